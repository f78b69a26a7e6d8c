// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// SpendingChain returns the ordered list of transactions that realize
// the template tree rooted at t, starting from the funding outpoint
// (txid, vout).
//
// The first transaction consumes the funding outpoint as its sole
// input with sequence t.Sequences[0] and a witness revealing the bare
// commitment script for t.  If the template's first output is a tree,
// the chain recurses into that child against output 0 of the
// just-built transaction, and so on down the tree.  Only the first
// output is ever followed; tree outputs at later positions are
// materialized as commitments but deliberately never auto-expanded.
//
// No signatures are involved anywhere in the chain: spendability is
// enforced purely by commitment-hash equality.
func (t *Template) SpendingChain(txid *chainhash.Hash, vout uint32) ([]*wire.MsgTx, error) {
	chain, err := t.spendingChain(txid, vout, 0)
	if err != nil {
		return nil, err
	}
	log.Debugf("Expanded spending chain of %d transaction(s) from "+
		"outpoint %v:%d", len(chain), txid, vout)
	return chain, nil
}

func (t *Template) spendingChain(txid *chainhash.Hash, vout uint32, depth int) ([]*wire.MsgTx, error) {
	if depth > MaxTemplateDepth {
		return nil, ErrTemplateTooDeep
	}
	if len(t.Sequences) == 0 {
		return nil, ErrMissingSequence
	}

	hash, err := t.hash(depth)
	if err != nil {
		return nil, err
	}
	commit, err := CommitScript(hash)
	if err != nil {
		return nil, err
	}
	txOuts, err := t.txOuts(depth)
	if err != nil {
		return nil, err
	}

	msg := wire.NewMsgTx(t.Version)
	msg.LockTime = t.Locktime
	msg.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(txid, vout),
		Sequence:         t.Sequences[0],
		Witness:          wire.TxWitness{commit},
	})
	for _, txOut := range txOuts {
		msg.AddTxOut(txOut)
	}

	chain := []*wire.MsgTx{msg}
	if len(t.Outputs) > 0 && t.Outputs[0].Type == OutputTree {
		childTxid := msg.TxHash()
		rest, err := t.Outputs[0].Tree.spendingChain(&childTxid, 0, depth+1)
		if err != nil {
			return nil, err
		}
		chain = append(chain, rest...)
	}

	return chain, nil
}

// TxHex returns the canonical hex serialization of a transaction for
// display or broadcast elsewhere.
func TxHex(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}
