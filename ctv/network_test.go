// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
)

func TestNetworkParams(t *testing.T) {
	tests := []struct {
		network Network
		want    *chaincfg.Params
	}{
		{Mainnet, &chaincfg.MainNetParams},
		{Testnet, &chaincfg.TestNet3Params},
		{Signet, &chaincfg.SigNetParams},
		{Regtest, &chaincfg.RegressionNetParams},
		{Simnet, &chaincfg.SimNetParams},
	}
	for _, test := range tests {
		params, err := test.network.Params()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.network, err)
			continue
		}
		if params != test.want {
			t.Errorf("%s: got params %s, want %s", test.network,
				params.Name, test.want.Name)
		}
	}

	if _, err := Network("florinet").Params(); !errors.Is(err, ErrUnknownNetwork) {
		t.Errorf("unknown network: got %v, want %v", err, ErrUnknownNetwork)
	}
}

func TestNetworkDecodeAddress(t *testing.T) {
	tests := []struct {
		name    string
		network Network
		addr    string
		wantErr error
	}{{
		name:    "regtest bech32 on regtest",
		network: Regtest,
		addr:    regtestAddr,
	}, {
		name:    "mainnet bech32 on mainnet",
		network: Mainnet,
		addr:    mainnetAddr,
	}, {
		name:    "testnet bech32 on testnet",
		network: Testnet,
		addr:    "tb1qvjs72xed9n9kay8xacd525gj2f8zrj9p25g0r2",
	}, {
		name:    "mainnet address on regtest",
		network: Regtest,
		addr:    mainnetAddr,
		wantErr: ErrInvalidAddressForNetwork,
	}, {
		name:    "garbage address",
		network: Mainnet,
		addr:    "not an address",
		wantErr: ErrInvalidAddressForNetwork,
	}, {
		name:    "empty address",
		network: Mainnet,
		addr:    "",
		wantErr: ErrInvalidAddressForNetwork,
	}}

	for _, test := range tests {
		_, err := test.network.DecodeAddress(test.addr)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.wantErr)
		}
	}
}
