// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"

	"github.com/ctvault/ctvault/ctv"
)

// Fee is the fixed fee, in satoshis, budgeted for the final hot or
// cold spend.  Both leaf templates pay amount - Fee.
const Fee btcutil.Amount = 600

// LockingScript builds the two-branch vault locking script:
//
//	OP_IF
//	    <delay> OP_CHECKSEQUENCEVERIFY OP_DROP
//	    <hotHash> OP_CHECKTEMPLATEVERIFY
//	OP_ELSE
//	    <coldHash> OP_CHECKTEMPLATEVERIFY
//	OP_ENDIF
//
// The hot leaf template's input sequence encodes delay relative
// blocks, since the committed spend must itself satisfy the CSV check;
// the cold leaf's sequence is zero.  Wrapped as P2WSH, the script is
// the vault's funding script.
func LockingScript(delay uint16, cold, hot string, network ctv.Network,
	amount btcutil.Amount) ([]byte, error) {

	if amount <= Fee {
		return nil, fmt.Errorf("%w: %v pays no more than the %v fee",
			ErrAmountTooSmall, amount, Fee)
	}
	if delay == 0 {
		return nil, ErrZeroDelay
	}

	coldHash, err := leafTemplate(network, cold, amount-Fee, 0).Hash()
	if err != nil {
		return nil, fmt.Errorf("cold leaf: %w", err)
	}
	hotHash, err := leafTemplate(network, hot, amount-Fee,
		uint32(delay)).Hash()
	if err != nil {
		return nil, fmt.Errorf("hot leaf: %w", err)
	}

	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_IF).
		AddInt64(int64(delay)).
		AddOp(txscript.OP_CHECKSEQUENCEVERIFY).
		AddOp(txscript.OP_DROP).
		AddData(hotHash).
		AddOp(txscript.OP_NOP4).
		AddOp(txscript.OP_ELSE).
		AddData(coldHash).
		AddOp(txscript.OP_NOP4).
		AddOp(txscript.OP_ENDIF).
		Script()
}

// leafTemplate is the single-output template committed by one branch
// of the vault script.
func leafTemplate(network ctv.Network, address string,
	amount btcutil.Amount, sequence uint32) *ctv.Template {

	return &ctv.Template{
		Network:   network,
		Version:   1,
		Locktime:  0,
		Sequences: []uint32{sequence},
		Outputs:   []ctv.Output{ctv.NewAddressOutput(address, amount)},
	}
}
