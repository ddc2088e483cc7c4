// Package auth provides sender permission checks and a two-step admin
// handover for contracts.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/cwkit/cwkit-go/cw"
	"github.com/cwkit/cwkit-go/internal/codec"
)

var (
	// ErrUnauthorized is returned when a sender fails a permission check.
	ErrUnauthorized = errors.New("sender doesn't have access permissions")

	// ErrNoNewAdmin is returned when no admin transfer is pending.
	ErrNoNewAdmin = errors.New("new admin wasn't specified")

	// ErrTransferAdminDeadline is returned when a pending transfer has expired.
	ErrTransferAdminDeadline = errors.New("too late to accept admin role")

	// ErrInvalidAuth is returned when an Auth value cannot be decoded.
	ErrInvalidAuth = errors.New("invalid auth")
)

// Kind selects which checks an Auth performs.
type Kind int

const (
	KindSimple Kind = iota
	KindOptional
	KindSpecified
	KindSimpleOptional
	KindSimpleSpecified
	KindOptionalSpecified
	KindSimpleOptionalSpecified
	KindExcluded
)

var kindNames = [...]string{
	KindSimple:                  "simple",
	KindOptional:                "optional",
	KindSpecified:               "specified",
	KindSimpleOptional:          "simple_optional",
	KindSimpleSpecified:         "simple_specified",
	KindOptionalSpecified:       "optional_specified",
	KindSimpleOptionalSpecified: "simple_optional_specified",
	KindExcluded:                "excluded",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Auth is a permission predicate over a message sender. The simple address
// always matches, the optional address matches when set, the list matches
// any member, and Excluded matches everyone not in the list.
type Auth struct {
	kind     Kind
	simple   cw.Addr
	optional *cw.Addr
	list     []cw.Addr
}

// Simple allows only addr.
func Simple(addr cw.Addr) Auth {
	return Auth{kind: KindSimple, simple: addr}
}

// Optional allows addr if set, and nobody otherwise.
func Optional(api cw.Api, addr *string) (Auth, error) {
	opt, err := validateOptional(api, addr)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindOptional, optional: opt}, nil
}

// Specified allows any address in list.
func Specified(api cw.Api, list []string) (Auth, error) {
	l, err := validateList(api, list)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindSpecified, list: l}, nil
}

// SimpleOptional allows simple and, if set, optional.
func SimpleOptional(api cw.Api, simple cw.Addr, optional *string) (Auth, error) {
	opt, err := validateOptional(api, optional)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindSimpleOptional, simple: simple, optional: opt}, nil
}

// SimpleSpecified allows simple and any address in list.
func SimpleSpecified(api cw.Api, simple cw.Addr, list []string) (Auth, error) {
	l, err := validateList(api, list)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindSimpleSpecified, simple: simple, list: l}, nil
}

// OptionalSpecified allows optional, if set, and any address in list.
func OptionalSpecified(api cw.Api, optional *string, list []string) (Auth, error) {
	opt, err := validateOptional(api, optional)
	if err != nil {
		return Auth{}, err
	}
	l, err := validateList(api, list)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindOptionalSpecified, optional: opt, list: l}, nil
}

// SimpleOptionalSpecified allows simple, optional if set, and any address
// in list.
func SimpleOptionalSpecified(api cw.Api, simple cw.Addr, optional *string, list []string) (Auth, error) {
	opt, err := validateOptional(api, optional)
	if err != nil {
		return Auth{}, err
	}
	l, err := validateList(api, list)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindSimpleOptionalSpecified, simple: simple, optional: opt, list: l}, nil
}

// Excluded allows every address except those in list.
func Excluded(api cw.Api, list []string) (Auth, error) {
	l, err := validateList(api, list)
	if err != nil {
		return Auth{}, err
	}
	return Auth{kind: KindExcluded, list: l}, nil
}

func validateOptional(api cw.Api, addr *string) (*cw.Addr, error) {
	if addr == nil {
		return nil, nil
	}
	v, err := api.AddrValidate(*addr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func validateList(api cw.Api, list []string) ([]cw.Addr, error) {
	out := make([]cw.Addr, 0, len(list))
	for _, s := range list {
		v, err := api.AddrValidate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Kind returns the variant of a.
func (a Auth) Kind() Kind {
	return a.kind
}

// Assert returns ErrUnauthorized unless sender passes a.
func (a Auth) Assert(sender cw.Addr) error {
	if !a.allows(sender) {
		return fmt.Errorf("%w: %s", ErrUnauthorized, sender)
	}
	return nil
}

func (a Auth) allows(sender cw.Addr) bool {
	isSimple := sender == a.simple
	isOptional := a.optional != nil && *a.optional == sender
	inList := slices.Contains(a.list, sender)

	switch a.kind {
	case KindSimple:
		return isSimple
	case KindOptional:
		return isOptional
	case KindSpecified:
		return inList
	case KindSimpleOptional:
		return isSimple || isOptional
	case KindSimpleSpecified:
		return isSimple || inList
	case KindOptionalSpecified:
		return isOptional || inList
	case KindSimpleOptionalSpecified:
		return isSimple || isOptional || inList
	case KindExcluded:
		return !inList
	}
	return false
}

type authFields struct {
	Simple   *cw.Addr  `json:"simple"`
	Optional *cw.Addr  `json:"optional"`
	List     []cw.Addr `json:"list"`
}

// MarshalJSON encodes the predicate as a single-key object named after its
// Kind. Empty lists are written as [].
func (a Auth) MarshalJSON() ([]byte, error) {
	list := a.list
	if list == nil {
		list = []cw.Addr{}
	}

	var payload any
	switch a.kind {
	case KindSimple:
		payload = a.simple
	case KindOptional:
		payload = a.optional
	case KindSpecified, KindExcluded:
		payload = list
	case KindSimpleOptional:
		payload = struct {
			Simple   cw.Addr  `json:"simple"`
			Optional *cw.Addr `json:"optional"`
		}{a.simple, a.optional}
	case KindSimpleSpecified:
		payload = struct {
			Simple cw.Addr   `json:"simple"`
			List   []cw.Addr `json:"list"`
		}{a.simple, list}
	case KindOptionalSpecified:
		payload = struct {
			Optional *cw.Addr  `json:"optional"`
			List     []cw.Addr `json:"list"`
		}{a.optional, list}
	case KindSimpleOptionalSpecified:
		payload = struct {
			Simple   cw.Addr   `json:"simple"`
			Optional *cw.Addr  `json:"optional"`
			List     []cw.Addr `json:"list"`
		}{a.simple, a.optional, list}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAuth, a.kind)
	}

	return json.Marshal(map[string]any{a.kind.String(): payload})
}

// UnmarshalJSON requires exactly one known variant key and fails with
// ErrInvalidAuth otherwise.
func (a *Auth) UnmarshalJSON(data []byte) error {
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(data, &variants); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAuth, err)
	}
	if len(variants) != 1 {
		return fmt.Errorf("%w: want exactly one variant, got %d", ErrInvalidAuth, len(variants))
	}

	for name, raw := range variants {
		kind, ok := kindByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidAuth, name)
		}

		out := Auth{kind: kind}
		var err error
		switch kind {
		case KindSimple:
			err = codec.Unmarshal(raw, &out.simple)
		case KindOptional:
			err = codec.Unmarshal(raw, &out.optional)
		case KindSpecified, KindExcluded:
			err = codec.Unmarshal(raw, &out.list)
		default:
			var f authFields
			if err = codec.Unmarshal(raw, &f); err == nil {
				if f.Simple != nil {
					out.simple = *f.Simple
				}
				out.optional = f.Optional
				out.list = f.List
			}
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidAuth, name, err)
		}

		*a = out
	}
	return nil
}

func kindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
