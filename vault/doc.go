// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package vault builds a two-branch hot/cold spending policy out of CTV
commitments.

The locking script has two mutually exclusive branches selected by a
leading boolean witness element.  The hot branch requires a relative
block delay to have elapsed and then commits to a template paying the
hot address; the cold branch commits immediately to a template paying
the cold address.  Because both destinations are committed as template
hashes rather than public keys, no private key ever signs a vault
spend, and the cold path keeps an unconditional veto over a hot
withdrawal for the whole delay window.

A Vault is the single source of truth for the policy: the deposit
address, the unvault template, and the two leaf templates are all
recomputed from its five scalar fields, so equal vaults always derive
byte-identical scripts and hashes.
*/
package vault
