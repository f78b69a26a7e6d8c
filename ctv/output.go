// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// OutputType discriminates the three output variants.  It is the
// explicit tag of the interchange encoding; an output is never
// identified by which fields happen to be present.
type OutputType string

// Output variants.
const (
	// OutputAddress pays Amount to a network-validated address.
	OutputAddress OutputType = "address"

	// OutputData is a zero-value, provably unspendable output carrying
	// opaque bytes.
	OutputData OutputType = "data"

	// OutputTree pays Amount into a script committing to the hash of a
	// nested template.  This is the mechanism by which templates nest
	// arbitrarily deep.
	OutputTree OutputType = "tree"
)

// Output is one output slot of a Template.  Exactly the fields of the
// tagged variant are set; the remaining fields stay at their zero
// values and are elided from the interchange encoding.
type Output struct {
	Type    OutputType     `json:"type"`
	Address string         `json:"address,omitempty"`
	Amount  btcutil.Amount `json:"amount,omitempty"`
	Data    string         `json:"data,omitempty"`
	Tree    *Template      `json:"tree,omitempty"`
}

// NewAddressOutput returns an output paying amount to address.
func NewAddressOutput(address string, amount btcutil.Amount) Output {
	return Output{Type: OutputAddress, Address: address, Amount: amount}
}

// NewDataOutput returns a zero-value output carrying data verbatim.
func NewDataOutput(data string) Output {
	return Output{Type: OutputData, Data: data}
}

// NewTreeOutput returns an output paying amount into a commitment to
// the nested template.
func NewTreeOutput(tree *Template, amount btcutil.Amount) Output {
	return Output{Type: OutputTree, Tree: tree, Amount: amount}
}

// UnmarshalJSON decodes an output and rejects encodings whose field
// set does not match the declared type tag.
func (o *Output) UnmarshalJSON(data []byte) error {
	type outputAlias Output
	var alias outputAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	decoded := Output(alias)
	if err := decoded.validate(); err != nil {
		return err
	}
	*o = decoded
	return nil
}

// validate checks that the field set is consistent with the type tag.
func (o *Output) validate() error {
	switch o.Type {
	case OutputAddress:
		if o.Address == "" || o.Tree != nil || o.Data != "" {
			return fmt.Errorf("%w: malformed address output",
				ErrUnknownOutputType)
		}
	case OutputData:
		if o.Address != "" || o.Tree != nil || o.Amount != 0 {
			return fmt.Errorf("%w: malformed data output",
				ErrUnknownOutputType)
		}
	case OutputTree:
		if o.Tree == nil || o.Address != "" || o.Data != "" {
			return fmt.Errorf("%w: malformed tree output",
				ErrUnknownOutputType)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputType, o.Type)
	}
	return nil
}

// txOut materializes the output for a template bound to network.  The
// depth tracks tree recursion so that expansion fails cleanly instead
// of exhausting the stack.
func (o *Output) txOut(network Network, depth int) (*wire.TxOut, error) {
	switch o.Type {
	case OutputAddress:
		addr, err := network.DecodeAddress(o.Address)
		if err != nil {
			return nil, err
		}
		pkScript, err := txscript.PayToAddrScript(addr)
		if err != nil {
			return nil, err
		}
		return wire.NewTxOut(int64(o.Amount), pkScript), nil

	case OutputData:
		payload := []byte(o.Data)
		if len(payload) > txscript.MaxDataCarrierSize {
			return nil, fmt.Errorf("%w: %d bytes, limit %d",
				ErrDataTooLarge, len(payload),
				txscript.MaxDataCarrierSize)
		}
		pkScript, err := txscript.NullDataScript(payload)
		if err != nil {
			return nil, err
		}
		return wire.NewTxOut(0, pkScript), nil

	case OutputTree:
		// The nested template hashes under its own network; the
		// commitment address lives on the enclosing one.
		hash, err := o.Tree.hash(depth + 1)
		if err != nil {
			return nil, err
		}
		commit, err := CommitScript(hash)
		if err != nil {
			return nil, err
		}
		params, err := network.Params()
		if err != nil {
			return nil, err
		}
		addr, err := CommitAddress(commit, params)
		if err != nil {
			return nil, err
		}
		pkScript, err := txscript.PayToAddrScript(addr)
		if err != nil {
			return nil, err
		}
		return wire.NewTxOut(int64(o.Amount), pkScript), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOutputType, o.Type)
}
