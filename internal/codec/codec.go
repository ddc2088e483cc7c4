// Package codec provides the canonical JSON encoding used for contract
// messages, storage slots and encrypted payloads.
//
// Output is stable for a given Go value: struct fields appear in declaration
// order, map keys are sorted, HTML characters are not escaped and no trailing
// newline is written. Decoding is strict: unknown object fields and trailing
// data after the first value are rejected.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidJSON is returned when bytes are not a valid encoding of the target type.
	ErrInvalidJSON = errors.New("invalid json")

	// ErrUnsupportedValue is returned when a value cannot be encoded.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Marshal returns the canonical encoding of v.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after value", ErrInvalidJSON)
	}

	return nil
}

// MustMarshal is like Marshal but panics on error. It is intended for values
// whose types are known to encode, such as message structs built in code.
func MustMarshal(v any) []byte {
	data, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
