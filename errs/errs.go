// Package errs collects the sentinel errors the codec surfaces, so callers
// can test for a specific failure with errors.Is regardless of how much
// context a wrapping fmt.Errorf("%w: ...") call adds.
package errs

import "errors"

var (
	// ErrInvalidKeyDollar is returned by encode when strict mode is on and
	// an element key begins with '$'.
	ErrInvalidKeyDollar = errors.New("bdoc: key begins with '$'")

	// ErrInvalidKeyDot is returned by encode when strict mode is on and an
	// element key contains '.'.
	ErrInvalidKeyDot = errors.New("bdoc: key contains '.'")

	// ErrUnsupportedValue is returned by encode when a Value cannot be
	// represented in BDoc, including when the top-level value passed to
	// Encode is not document-shaped.
	ErrUnsupportedValue = errors.New("bdoc: unsupported value")

	// ErrTruncated is returned by decode when the declared document or
	// container size exceeds the remaining input bytes.
	ErrTruncated = errors.New("bdoc: truncated input")

	// ErrUnknownTag is returned by decode when an element's type tag byte
	// is not one BDoc recognizes.
	ErrUnknownTag = errors.New("bdoc: unknown type tag")

	// ErrMissingTerminator is returned by decode when a document or array
	// is not terminated by the trailing 0x00 byte.
	ErrMissingTerminator = errors.New("bdoc: missing terminator")

	// ErrInvalidUTF8 is returned by decode when a string payload is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("bdoc: invalid UTF-8")

	// ErrMissingKey is returned when a key cannot be read before the
	// input runs out.
	ErrMissingKey = errors.New("bdoc: unterminated element key")

	// ErrRecursionTooDeep is returned by encode/decode when nested
	// documents/arrays exceed the configured maximum depth, guarding
	// against the pathological recursion spec.md §9 flags as an
	// implementation's prerogative to reject.
	ErrRecursionTooDeep = errors.New("bdoc: recursion depth exceeded")
)
