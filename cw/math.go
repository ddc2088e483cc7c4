package cw

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Uint128 is an unsigned 128-bit integer. It encodes as a decimal string.
// The zero value is 0.
type Uint128 struct {
	v uint256.Int
}

// NewUint128 creates a Uint128 from a uint64.
func NewUint128(n uint64) Uint128 {
	var u Uint128
	u.v.SetUint64(n)
	return u
}

// ParseUint128 parses a base-10 string.
func ParseUint128(s string) (Uint128, error) {
	x, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint128{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return Uint128FromBig(x)
}

// MustParseUint128 is like ParseUint128 but panics on error.
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Uint128FromBig converts a 256-bit integer, failing if it does not fit.
func Uint128FromBig(x *uint256.Int) (Uint128, error) {
	if x.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s exceeds 128 bits", ErrOverflow, x.Dec())
	}
	var u Uint128
	u.v.Set(x)
	return u, nil
}

// Big returns a copy of the value as a 256-bit integer.
func (u Uint128) Big() *uint256.Int {
	return u.v.Clone()
}

// Uint64 returns the value as a uint64 and whether it fits.
func (u Uint128) Uint64() (uint64, bool) {
	return u.v.Uint64(), u.v.IsUint64()
}

func (u Uint128) IsZero() bool {
	return u.v.IsZero()
}

// Cmp returns -1, 0 or +1 as u is less than, equal to or greater than o.
func (u Uint128) Cmp(o Uint128) int {
	return u.v.Cmp(&o.v)
}

// CheckedAdd returns u+o or ErrOverflow.
func (u Uint128) CheckedAdd(o Uint128) (Uint128, error) {
	var sum uint256.Int
	sum.Add(&u.v, &o.v)
	return Uint128FromBig(&sum)
}

// CheckedSub returns u-o or ErrOverflow when o > u.
func (u Uint128) CheckedSub(o Uint128) (Uint128, error) {
	if u.v.Lt(&o.v) {
		return Uint128{}, fmt.Errorf("%w: %s - %s", ErrOverflow, u, o)
	}
	var diff Uint128
	diff.v.Sub(&u.v, &o.v)
	return diff, nil
}

// CheckedMul returns u*o or ErrOverflow.
func (u Uint128) CheckedMul(o Uint128) (Uint128, error) {
	// Two 128-bit operands cannot overflow 256 bits.
	var prod uint256.Int
	prod.Mul(&u.v, &o.v)
	return Uint128FromBig(&prod)
}

// CheckedDiv returns u/o or ErrDivideByZero.
func (u Uint128) CheckedDiv(o Uint128) (Uint128, error) {
	if o.IsZero() {
		return Uint128{}, ErrDivideByZero
	}
	var q Uint128
	q.v.Div(&u.v, &o.v)
	return q, nil
}

func (u Uint128) String() string {
	return u.v.Dec()
}

// MarshalJSON encodes the value as a decimal string.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts only a decimal string.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("uint128 must be a string: %w", err)
	}
	parsed, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// DecimalPlaces is the fixed number of fractional digits of a Decimal.
const DecimalPlaces = 18

var decimalFractional = uint256.NewInt(1_000_000_000_000_000_000)

// Decimal is an unsigned fixed-point number with DecimalPlaces fractional
// digits, stored as a Uint128 count of 10^-18 units. It encodes as a
// decimal string such as "0.5".
type Decimal struct {
	atomics Uint128
}

// DecimalFromAtomics creates a Decimal from a count of 10^-18 units.
func DecimalFromAtomics(atomics Uint128) Decimal {
	return Decimal{atomics: atomics}
}

// DecimalOne returns 1.0.
func DecimalOne() Decimal {
	var d Decimal
	d.atomics.v.Set(decimalFractional)
	return d
}

// DecimalPercent returns x/100.
func DecimalPercent(x uint64) Decimal {
	var d Decimal
	d.atomics.v.Mul(uint256.NewInt(x), uint256.NewInt(10_000_000_000_000_000))
	return d
}

// DecimalFromRatio returns numerator/denominator truncated to
// DecimalPlaces digits.
func DecimalFromRatio(numerator, denominator Uint128) (Decimal, error) {
	if denominator.IsZero() {
		return Decimal{}, ErrDivideByZero
	}

	var x uint256.Int
	x.Mul(&numerator.v, decimalFractional)
	x.Div(&x, &denominator.v)

	atomics, err := Uint128FromBig(&x)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{atomics: atomics}, nil
}

// ParseDecimal parses strings like "12", "0.5" or "3.000000000000000001".
func ParseDecimal(s string) (Decimal, error) {
	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || (hasDot && frac == "") || len(frac) > DecimalPlaces || !isDigits(whole) || !isDigits(frac) {
		return Decimal{}, fmt.Errorf("%w: decimal %q", ErrInvalidNumber, s)
	}

	w, err := uint256.FromDecimal(whole)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: decimal %q", ErrInvalidNumber, s)
	}
	if w.BitLen() > 128 {
		return Decimal{}, fmt.Errorf("%w: decimal %q", ErrOverflow, s)
	}

	var atomics uint256.Int
	atomics.Mul(w, decimalFractional)

	if frac != "" {
		f, err := uint256.FromDecimal(frac + strings.Repeat("0", DecimalPlaces-len(frac)))
		if err != nil {
			return Decimal{}, fmt.Errorf("%w: decimal %q", ErrInvalidNumber, s)
		}
		atomics.Add(&atomics, f)
	}

	a, err := Uint128FromBig(&atomics)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{atomics: a}, nil
}

// MustParseDecimal is like ParseDecimal but panics on error.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Atomics returns the value as a count of 10^-18 units.
func (d Decimal) Atomics() Uint128 {
	return d.atomics
}

func (d Decimal) IsZero() bool {
	return d.atomics.IsZero()
}

// Cmp compares two decimals like Uint128.Cmp.
func (d Decimal) Cmp(o Decimal) int {
	return d.atomics.Cmp(o.atomics)
}

func (d Decimal) String() string {
	var whole, frac uint256.Int
	whole.DivMod(&d.atomics.v, decimalFractional, &frac)

	if frac.IsZero() {
		return whole.Dec()
	}

	digits := frac.Dec()
	digits = strings.Repeat("0", DecimalPlaces-len(digits)) + digits
	return whole.Dec() + "." + strings.TrimRight(digits, "0")
}

// MarshalJSON encodes the value as a decimal string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts only a decimal string.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decimal must be a string: %w", err)
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
