// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/ctvault/ctvault/ctv"
)

// spendCommand expands a template token into its full spending chain
// against the given outpoint.
type spendCommand struct {
	Template string `long:"template" required:"true" description:"Template token to expand"`
	Txid     string `long:"txid" required:"true" description:"Transaction id of the outpoint being spent"`
	Vout     uint32 `long:"vout" description:"Output index of the outpoint being spent"`
}

func (c *spendCommand) Execute(_ []string) error {
	tmpl, err := ctv.ParseTemplate([]byte(c.Template))
	if err != nil {
		return err
	}
	txid, err := chainhash.NewHashFromStr(c.Txid)
	if err != nil {
		return fmt.Errorf("invalid txid %q: %w", c.Txid, err)
	}

	chain, err := tmpl.SpendingChain(txid, c.Vout)
	if err != nil {
		return err
	}
	for _, tx := range chain {
		txHex, err := ctv.TxHex(tx)
		if err != nil {
			return err
		}
		fmt.Println(txHex)
	}
	return nil
}
