// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ctv implements BIP-119 CheckTemplateVerify commitments and a
declarative transaction template model built on top of them.

A Template describes the shape of a future transaction: version,
locktime, input sequence numbers, and an ordered list of outputs.  An
output either pays a network-validated address, carries opaque data in
a provably unspendable script, or pays into a commitment to a nested
Template.  Nesting is what makes templates useful: an output that
commits to the hash of a child template can only ever be spent by a
transaction matching that child exactly, so a template tree pins down
an entire chain of future spends with no signatures involved.

TemplateHash is the hashing primitive.  It must match the consensus
encoding byte for byte; the vector corpus under testdata exercises it
against transactions in the BIP-119 reference vector format.

The package is purely functional.  Every value is immutable after
construction, no operation performs I/O, and all functions are safe for
concurrent use.
*/
package ctv
