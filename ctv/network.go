// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects the chain a template's addresses and scripts are
// bound to.  The string form is the interchange encoding.
type Network string

// Supported networks.
const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
	Simnet  Network = "simnet"
)

// Params returns the chain parameters for the network.
func (n Network) Params() (*chaincfg.Params, error) {
	switch n {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Testnet:
		return &chaincfg.TestNet3Params, nil
	case Signet:
		return &chaincfg.SigNetParams, nil
	case Regtest:
		return &chaincfg.RegressionNetParams, nil
	case Simnet:
		return &chaincfg.SimNetParams, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, string(n))
}

// DecodeAddress parses addr and verifies that it belongs to the
// network.  A mismatch is a hard error, never a silent coercion.
func (n Network) DecodeAddress(addr string) (btcutil.Address, error) {
	params, err := n.Params()
	if err != nil {
		return nil, err
	}
	decoded, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddressForNetwork,
			addr, err)
	}
	if !decoded.IsForNet(params) {
		return nil, fmt.Errorf("%w: %q is not a %s address",
			ErrInvalidAddressForNetwork, addr, n)
	}
	return decoded, nil
}
