package cw

import "errors"

var (
	// ErrNotFound is returned when a storage slot holds no value.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an address fails validation.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrOverflow is returned when an arithmetic result does not fit in 128 bits.
	ErrOverflow = errors.New("overflow")

	// ErrDivideByZero is returned on division by zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrInvalidNumber is returned when a decimal string cannot be parsed.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNoSuchContract is returned by MockQuerier for unregistered contracts.
	ErrNoSuchContract = errors.New("no such contract")
)

// ErrUnsupportedHost is returned for an unknown host SDK version.
var ErrUnsupportedHost = errors.New("unsupported host version")
