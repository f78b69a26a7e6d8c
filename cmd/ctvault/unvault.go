// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/ctvault/ctvault/ctv"
	"github.com/ctvault/ctvault/vault"
)

// unvaultCommand builds the unvault transaction from a vault token and
// the confirmed funding outpoint, and prints the hot and cold template
// tokens spendable from its first output.
type unvaultCommand struct {
	Vault string `long:"vault" required:"true" description:"Vault token from the lock step"`
	Txid  string `long:"txid" required:"true" description:"Funding transaction id"`
	Vout  uint32 `long:"vout" description:"Funding output index"`
}

func (c *unvaultCommand) Execute(_ []string) error {
	v, err := vault.Parse([]byte(c.Vault))
	if err != nil {
		return err
	}
	txid, err := chainhash.NewHashFromStr(c.Txid)
	if err != nil {
		return fmt.Errorf("invalid txid %q: %w", c.Txid, err)
	}

	tmpl, err := v.Template()
	if err != nil {
		return err
	}
	chain, err := tmpl.SpendingChain(txid, c.Vout)
	if err != nil {
		return err
	}
	txHex, err := ctv.TxHex(chain[0])
	if err != nil {
		return err
	}

	hot, err := v.HotTemplate()
	if err != nil {
		return err
	}
	hotToken, err := json.Marshal(hot)
	if err != nil {
		return err
	}
	cold, err := v.ColdTemplate()
	if err != nil {
		return err
	}
	coldToken, err := json.Marshal(cold)
	if err != nil {
		return err
	}

	fmt.Printf("unvault tx: %s\n", txHex)
	fmt.Printf("hot template: %s\n", hotToken)
	fmt.Printf("cold template: %s\n", coldToken)
	return nil
}
