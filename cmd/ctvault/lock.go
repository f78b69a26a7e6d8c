// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/ctvault/ctvault/ctv"
	"github.com/ctvault/ctvault/vault"
)

// lockCommand validates vault parameters and prints the deposit
// address plus the vault token used by the later steps.
type lockCommand struct {
	Hot     string `long:"hot" required:"true" description:"Hot wallet address"`
	Cold    string `long:"cold" required:"true" description:"Cold wallet address"`
	Amount  int64  `long:"amount" required:"true" description:"Vault amount in satoshis"`
	Delay   uint16 `long:"delay" required:"true" description:"Relative delay in blocks gating the hot path"`
	Network string `long:"network" default:"regtest" description:"Network (mainnet, testnet, signet, regtest, simnet)"`
}

func (c *lockCommand) Execute(_ []string) error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", c.Amount)
	}

	v, err := vault.New(c.Hot, c.Cold, btcutil.Amount(c.Amount), c.Delay,
		ctv.Network(c.Network))
	if err != nil {
		return err
	}
	addr, err := v.Address()
	if err != nil {
		return err
	}
	token, err := v.Token()
	if err != nil {
		return err
	}

	log.Infof("Locked %v behind a %d-block delay on %s", v.Amount,
		v.Delay, v.Network)
	fmt.Printf("deposit address: %s\n", addr.EncodeAddress())
	fmt.Printf("vault token: %s\n", token)
	return nil
}
