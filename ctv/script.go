// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// CommitScript returns the bare commitment-check script for a template
// hash:
//
//	<32-byte hash> OP_CHECKTEMPLATEVERIFY
//
// OP_CHECKTEMPLATEVERIFY is emitted as OP_NOP4, its assigned opcode
// under BIP-119.  An input locked by this script can only be spent by
// a transaction whose template hash equals the committed value.
func CommitScript(templateHash []byte) ([]byte, error) {
	if len(templateHash) != sha256.Size {
		return nil, fmt.Errorf("%w: got %d bytes",
			ErrMalformedCommitment, len(templateHash))
	}
	return txscript.NewScriptBuilder().
		AddData(templateHash).
		AddOp(txscript.OP_NOP4).
		Script()
}

// CommitAddress wraps a witness script as a pay-to-witness-script-hash
// address on the given network.
func CommitAddress(script []byte, params *chaincfg.Params) (btcutil.Address, error) {
	scriptHash := sha256.Sum256(script)
	addr, err := btcutil.NewAddressWitnessScriptHash(scriptHash[:], params)
	if err != nil {
		return nil, err
	}
	return addr, nil
}
