package cw

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Api exposes the host's address functions.
type Api interface {
	// AddrValidate checks that human is a valid, normalized address.
	AddrValidate(human string) (Addr, error)
	// AddrCanonicalize returns the binary form of a human-readable address.
	AddrCanonicalize(human string) ([]byte, error)
	// AddrHumanize returns the human-readable form of a binary address.
	AddrHumanize(canonical []byte) (Addr, error)
}

// Bech32Api implements Api for bech32 addresses with a fixed prefix.
type Bech32Api struct {
	Prefix string
}

var _ Api = Bech32Api{}

// NewBech32Api creates an Api for the given address prefix.
func NewBech32Api(prefix string) Bech32Api {
	return Bech32Api{Prefix: prefix}
}

func (a Bech32Api) AddrValidate(human string) (Addr, error) {
	canonical, err := a.AddrCanonicalize(human)
	if err != nil {
		return "", err
	}

	normalized, err := a.AddrHumanize(canonical)
	if err != nil {
		return "", err
	}
	if string(normalized) != human {
		return "", fmt.Errorf("%w: %q is not normalized", ErrInvalidAddress, human)
	}

	return normalized, nil
}

func (a Bech32Api) AddrCanonicalize(human string) ([]byte, error) {
	hrp, data, err := bech32.DecodeToBase256(human)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, human, err)
	}
	if hrp != a.Prefix {
		return nil, fmt.Errorf("%w: prefix %q, want %q", ErrInvalidAddress, hrp, a.Prefix)
	}
	if len(data) == 0 || len(data) > 255 {
		return nil, fmt.Errorf("%w: canonical length %d", ErrInvalidAddress, len(data))
	}
	return data, nil
}

func (a Bech32Api) AddrHumanize(canonical []byte) (Addr, error) {
	if len(canonical) == 0 || len(canonical) > 255 {
		return "", fmt.Errorf("%w: canonical length %d", ErrInvalidAddress, len(canonical))
	}

	human, err := bech32.EncodeFromBase256(a.Prefix, canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return Addr(strings.ToLower(human)), nil
}

// AddrMake derives a deterministic valid address from a label by hashing it
// with SHA-256. It is meant for tests.
func (a Bech32Api) AddrMake(label string) Addr {
	sum := sha256.Sum256([]byte(label))
	addr, err := a.AddrHumanize(sum[:])
	if err != nil {
		panic(fmt.Sprintf("cw: cannot make address with prefix %q: %v", a.Prefix, err))
	}
	return addr
}
