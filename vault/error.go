// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import "errors"

var (
	// ErrAmountTooSmall is returned when the vault amount does not
	// exceed the fixed spend fee, which would underflow the leaf
	// template amounts.
	ErrAmountTooSmall = errors.New("amount does not cover the spend fee")

	// ErrZeroDelay is returned when the relative block delay is zero.
	// A zero delay would collapse the hot branch into a second cold
	// path.
	ErrZeroDelay = errors.New("relative delay must be at least one block")

	// ErrSerialization is returned when a vault token cannot be parsed
	// back into a Vault.
	ErrSerialization = errors.New("malformed vault encoding")
)
