// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nasaddr

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidKeyType indicates an attempt to derive an address from a
	// public key whose type is not the one required by the scheme.
	ErrInvalidKeyType = ErrorKind("ErrInvalidKeyType")

	// ErrMalformedEncoding indicates address text that can not be decoded by
	// the scheme's text codec or that decodes to no data.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrInvalidLength indicates address data that is not exactly the size
	// required by the scheme.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidPrefix indicates address data whose leading byte is not the
	// scheme's prefix.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrInvalidTypeTag indicates address data whose type byte is not one of
	// the types the scheme recognizes.
	ErrInvalidTypeTag = ErrorKind("ErrInvalidTypeTag")

	// ErrChecksumMismatch indicates address data whose trailing checksum does
	// not match the checksum of its content.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrInvalidHashLen indicates a key hash whose length is not the one
	// produced by the scheme's hasher.
	ErrInvalidHashLen = ErrorKind("ErrInvalidHashLen")

	// ErrInvalidScheme indicates scheme parameters that can not describe a
	// usable address family.
	ErrInvalidScheme = ErrorKind("ErrInvalidScheme")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
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
