// Copyright (c) 2026 The nasutil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textcodec

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrMalformedText, "ErrMalformedText"},
		{ErrMismatchedHRP, "ErrMismatchedHRP"},
		{ErrInvalidAlphabet, "ErrInvalidAlphabet"},
		{ErrUnknownCodec, "ErrUnknownCodec"},
		{ErrInvalidHRP, "ErrInvalidHRP"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrMalformedText == ErrMalformedText",
		err:       ErrMalformedText,
		target:    ErrMalformedText,
		wantMatch: true,
		wantAs:    ErrMalformedText,
	}, {
		name:      "Error.ErrMalformedText == ErrMalformedText",
		err:       makeError(ErrMalformedText, ""),
		target:    ErrMalformedText,
		wantMatch: true,
		wantAs:    ErrMalformedText,
	}, {
		name:      "Error.ErrMismatchedHRP != ErrMalformedText",
		err:       makeError(ErrMismatchedHRP, ""),
		target:    ErrMalformedText,
		wantMatch: false,
		wantAs:    ErrMismatchedHRP,
	}, {
		name:      "Error.ErrMismatchedHRP != io.EOF",
		err:       makeError(ErrMismatchedHRP, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrMismatchedHRP,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
