// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textcodec

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedText indicates text could not be decoded because it
	// contains characters outside of the alphabet or is otherwise not a valid
	// encoding.
	ErrMalformedText = ErrorKind("ErrMalformedText")

	// ErrMismatchedHRP indicates a bech32 string decoded successfully but
	// carries a human-readable part other than the one the codec expects.
	ErrMismatchedHRP = ErrorKind("ErrMismatchedHRP")

	// ErrInvalidAlphabet indicates a codec was configured with an alphabet
	// that can not be used for encoding.
	ErrInvalidAlphabet = ErrorKind("ErrInvalidAlphabet")

	// ErrUnknownCodec indicates a codec was requested by a name that does not
	// identify any supported encoding.
	ErrUnknownCodec = ErrorKind("ErrUnknownCodec")

	// ErrInvalidHRP indicates a bech32 codec was configured with an invalid
	// human-readable part.
	ErrInvalidHRP = ErrorKind("ErrInvalidHRP")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a text encoding related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
