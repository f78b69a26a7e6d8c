// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import "errors"

// Template construction and expansion errors.  All failures are
// terminal for the operation that raised them: a builder either returns
// a fully valid result or one of these errors, never a partial value.
var (
	// ErrUnknownNetwork is returned when a network selector does not
	// name one of the supported chains.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrInvalidAddressForNetwork is returned when an address either
	// fails to decode or decodes to a different network than the one
	// the enclosing template declares.
	ErrInvalidAddressForNetwork = errors.New("address is not valid for network")

	// ErrMissingSequence is returned when a template with no sequence
	// numbers is used as the spent side of a chain.  The first
	// sequence is the one placed on the real spending input.
	ErrMissingSequence = errors.New("template has no sequences")

	// ErrDataTooLarge is returned when a data output's payload exceeds
	// the script push limit for unspendable outputs.
	ErrDataTooLarge = errors.New("data exceeds maximum carrier size")

	// ErrMalformedCommitment is returned when a commitment hash is not
	// exactly 32 bytes.
	ErrMalformedCommitment = errors.New("commitment hash is not 32 bytes")

	// ErrUnknownOutputType is returned when an output's type tag names
	// no known variant or its field set does not match the tag.
	ErrUnknownOutputType = errors.New("unknown output type")

	// ErrTemplateTooDeep is returned when template nesting exceeds
	// MaxTemplateDepth.  Expansion never silently truncates; it either
	// runs to completion or fails with this error.
	ErrTemplateTooDeep = errors.New("template nesting exceeds maximum depth")

	// ErrSerialization is returned when interchange text cannot be
	// parsed back into the data model.
	ErrSerialization = errors.New("malformed template encoding")
)
