// Package assets unifies native coins and cw20 tokens behind one Token type
// and builds the messages that move them.
package assets

import (
	"encoding/json"
	"fmt"

	"github.com/cwkit/cwkit-go/cw"
	"github.com/cwkit/cwkit-go/internal/codec"
)

// Token is either a native denomination or a cw20 contract address.
// It encodes as {"native":{"denom":...}} or {"cw20":{"address":...}}.
type Token struct {
	denom   string
	address cw.Addr
	cw20    bool
}

// NewNative creates a native token.
func NewNative(denom string) Token {
	return Token{denom: denom}
}

// NewCw20 creates a cw20 token.
func NewCw20(address cw.Addr) Token {
	return Token{address: address, cw20: true}
}

func (t Token) IsNative() bool {
	return !t.cw20
}

// TryGetNative returns the denom, or ErrAssetNotFound for a cw20 token.
func (t Token) TryGetNative() (string, error) {
	if t.cw20 {
		return "", ErrAssetNotFound
	}
	return t.denom, nil
}

// TryGetCw20 returns the contract address, or ErrAssetNotFound for a
// native token.
func (t Token) TryGetCw20() (cw.Addr, error) {
	if !t.cw20 {
		return "", ErrAssetNotFound
	}
	return t.address, nil
}

// Symbol returns the denom or the contract address.
func (t Token) Symbol() string {
	if t.cw20 {
		return t.address.String()
	}
	return t.denom
}

func (t Token) String() string {
	if t.cw20 {
		return "cw20:" + t.address.String()
	}
	return "native:" + t.denom
}

// Unverified converts t back to its unverified form.
func (t Token) Unverified() TokenUnverified {
	if t.cw20 {
		return NewCw20Unverified(t.address.String())
	}
	return NewNativeUnverified(t.denom)
}

type nativeJSON struct {
	Denom string `json:"denom"`
}

type cw20JSON struct {
	Address string `json:"address"`
}

type tokenJSON struct {
	Native *nativeJSON `json:"native,omitempty"`
	Cw20   *cw20JSON   `json:"cw20,omitempty"`
}

// MarshalJSON encodes the token as {"native":{"denom":...}} or
// {"cw20":{"address":...}}.
func (t Token) MarshalJSON() ([]byte, error) {
	return t.Unverified().MarshalJSON()
}

// UnmarshalJSON decodes either token form. The cw20 address is taken as is;
// decode a TokenUnverified and call Verify to validate it.
func (t *Token) UnmarshalJSON(data []byte) error {
	var u TokenUnverified
	if err := u.UnmarshalJSON(data); err != nil {
		return err
	}
	if u.cw20 {
		*t = NewCw20(cw.Addr(u.address))
	} else {
		*t = NewNative(u.denom)
	}
	return nil
}

// TokenUnverified is a Token whose cw20 address has not been validated,
// as received in a message.
type TokenUnverified struct {
	denom   string
	address string
	cw20    bool
}

// NewNativeUnverified creates an unverified native token.
func NewNativeUnverified(denom string) TokenUnverified {
	return TokenUnverified{denom: denom}
}

// NewCw20Unverified creates an unverified cw20 token.
func NewCw20Unverified(address string) TokenUnverified {
	return TokenUnverified{address: address, cw20: true}
}

// IsNative reports whether the token is a native denom.
func (t TokenUnverified) IsNative() bool {
	return !t.cw20
}

// Verify validates the cw20 address with api.
func (t TokenUnverified) Verify(api cw.Api) (Token, error) {
	if !t.cw20 {
		return NewNative(t.denom), nil
	}

	addr, err := api.AddrValidate(t.address)
	if err != nil {
		return Token{}, fmt.Errorf("verify cw20 token: %w", err)
	}
	return NewCw20(addr), nil
}

// Symbol returns the denom or the contract address.
func (t TokenUnverified) Symbol() string {
	if t.cw20 {
		return t.address
	}
	return t.denom
}

// MarshalJSON uses the same encoding as Token.
func (t TokenUnverified) MarshalJSON() ([]byte, error) {
	if t.cw20 {
		return json.Marshal(tokenJSON{Cw20: &cw20JSON{Address: t.address}})
	}
	return json.Marshal(tokenJSON{Native: &nativeJSON{Denom: t.denom}})
}

// UnmarshalJSON requires exactly one of "native" or "cw20" and fails with
// ErrInvalidToken otherwise.
func (t *TokenUnverified) UnmarshalJSON(data []byte) error {
	var v tokenJSON
	if err := codec.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	switch {
	case v.Native != nil && v.Cw20 == nil:
		*t = NewNativeUnverified(v.Native.Denom)
	case v.Cw20 != nil && v.Native == nil:
		*t = NewCw20Unverified(v.Cw20.Address)
	default:
		return fmt.Errorf("%w: want exactly one of native or cw20", ErrInvalidToken)
	}
	return nil
}

// Currency is a token together with its number of decimals.
type Currency[T any] struct {
	Token    T     `json:"token"`
	Decimals uint8 `json:"decimals"`
}

// NewCurrency creates a Currency.
func NewCurrency[T any](token T, decimals uint8) Currency[T] {
	return Currency[T]{Token: token, Decimals: decimals}
}

// DefaultCurrency returns a native token with an empty denom and no decimals.
func DefaultCurrency() Currency[Token] {
	return NewCurrency(NewNative(""), 0)
}
