// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// MaxTemplateDepth is the maximum nesting depth of tree outputs.
// Expansion of a deeper tree fails with ErrTemplateTooDeep rather than
// riding the process stack to an unpredictable limit.
const MaxTemplateDepth = 128

// Template is the declarative skeleton of a future transaction.  It is
// deliberately agnostic to where it will be spent from: inputs carry
// only sequence numbers, so the same template can be replayed against
// any funding outpoint.  Output order is significant and is bound into
// the commitment hash.
//
// Template values are immutable pure data.  The JSON encoding is the
// interchange form and round-trips losslessly.
type Template struct {
	Network   Network  `json:"network"`
	Version   int32    `json:"version"`
	Locktime  uint32   `json:"locktime"`
	Sequences []uint32 `json:"sequences"`
	Outputs   []Output `json:"outputs"`
}

// ParseTemplate decodes a template from its interchange encoding.
func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return &t, nil
}

// Tx materializes the template into a concrete transaction.  Inputs
// carry only their sequence numbers; outputs are built per variant.
// Address validation failures and oversized data payloads abort the
// whole materialization, no partial transaction is ever returned.
func (t *Template) Tx() (*wire.MsgTx, error) {
	return t.tx(0)
}

func (t *Template) tx(depth int) (*wire.MsgTx, error) {
	if depth > MaxTemplateDepth {
		return nil, ErrTemplateTooDeep
	}

	msg := wire.NewMsgTx(t.Version)
	msg.LockTime = t.Locktime
	for _, seq := range t.Sequences {
		msg.AddTxIn(&wire.TxIn{Sequence: seq})
	}
	txOuts, err := t.txOuts(depth)
	if err != nil {
		return nil, err
	}
	for _, txOut := range txOuts {
		msg.AddTxOut(txOut)
	}
	return msg, nil
}

// TxOuts materializes just the outputs of the template.
func (t *Template) TxOuts() ([]*wire.TxOut, error) {
	return t.txOuts(0)
}

func (t *Template) txOuts(depth int) ([]*wire.TxOut, error) {
	txOuts := make([]*wire.TxOut, 0, len(t.Outputs))
	for i := range t.Outputs {
		txOut, err := t.Outputs[i].txOut(t.Network, depth)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		txOuts = append(txOuts, txOut)
	}
	return txOuts, nil
}

// Hash returns the 32-byte BIP-119 commitment hash of the template for
// input index 0.  The hash is a pure function of the template's value:
// equal templates produce byte-identical hashes on every call.
func (t *Template) Hash() ([]byte, error) {
	return t.hash(0)
}

func (t *Template) hash(depth int) ([]byte, error) {
	tx, err := t.tx(depth)
	if err != nil {
		return nil, err
	}
	return TemplateHash(tx, 0), nil
}

// Address returns the P2WSH address of the template's bare commitment
// script.  Funds sent here can only be spent by the transaction the
// template describes.
func (t *Template) Address() (btcutil.Address, error) {
	hash, err := t.Hash()
	if err != nil {
		return nil, err
	}
	commit, err := CommitScript(hash)
	if err != nil {
		return nil, err
	}
	params, err := t.Network.Params()
	if err != nil {
		return nil, err
	}
	return CommitAddress(commit, params)
}
