// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/ctvault/ctvault/ctv"
)

// Vault holds the five scalars that fully determine a hot/cold vault
// policy.  Everything else is derived: the deposit address, the
// unvault template, and the hot/cold leaf templates are recomputed
// from these fields on demand, never stored, so a vault can round-trip
// through its JSON token between the funding step and the later spend
// steps without any hidden state.
type Vault struct {
	Hot     string         `json:"hot"`
	Cold    string         `json:"cold"`
	Amount  btcutil.Amount `json:"amount"`
	Delay   uint16         `json:"delay"`
	Network ctv.Network    `json:"network"`
}

// New constructs a validated vault.
func New(hot, cold string, amount btcutil.Amount, delay uint16,
	network ctv.Network) (*Vault, error) {

	v := &Vault{
		Hot:     hot,
		Cold:    cold,
		Amount:  amount,
		Delay:   delay,
		Network: network,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Parse decodes and validates a vault from its JSON token.
func Parse(data []byte) (*Vault, error) {
	var v Vault
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks the vault's parameters: both addresses must decode
// on the vault's network, the amount must cover the fixed fee, and the
// delay must be non-zero.
func (v *Vault) Validate() error {
	if _, err := v.Network.DecodeAddress(v.Hot); err != nil {
		return fmt.Errorf("hot: %w", err)
	}
	if _, err := v.Network.DecodeAddress(v.Cold); err != nil {
		return fmt.Errorf("cold: %w", err)
	}
	if v.Amount <= Fee {
		return fmt.Errorf("%w: %v pays no more than the %v fee",
			ErrAmountTooSmall, v.Amount, Fee)
	}
	if v.Delay == 0 {
		return ErrZeroDelay
	}
	return nil
}

// Token returns the vault's JSON interchange token.
func (v *Vault) Token() ([]byte, error) {
	return json.Marshal(v)
}

// LockingScript returns the vault's two-branch locking script.
func (v *Vault) LockingScript() ([]byte, error) {
	return LockingScript(v.Delay, v.Cold, v.Hot, v.Network, v.Amount)
}

// Address returns the vault's deposit address: the P2WSH wrapping of
// the two-branch locking script, checked against the vault's network.
func (v *Vault) Address() (btcutil.Address, error) {
	script, err := v.LockingScript()
	if err != nil {
		return nil, err
	}
	params, err := v.Network.Params()
	if err != nil {
		return nil, err
	}
	addr, err := ctv.CommitAddress(script, params)
	if err != nil {
		return nil, err
	}
	log.Debugf("Derived vault address %v on %s", addr, v.Network)
	return addr, nil
}

// Template returns the unvault template: a single-input, single-output
// template locking the full vault amount into the vault's own script.
// Its spending chain against a real funding outpoint is the unvault
// transaction.
func (v *Vault) Template() (*ctv.Template, error) {
	addr, err := v.Address()
	if err != nil {
		return nil, err
	}
	return &ctv.Template{
		Network:   v.Network,
		Version:   1,
		Locktime:  0,
		Sequences: []uint32{0},
		Outputs: []ctv.Output{
			ctv.NewAddressOutput(addr.EncodeAddress(), v.Amount),
		},
	}, nil
}

// HotTemplate returns the leaf template committed by the hot branch:
// it pays Amount - Fee to the hot address and carries the CSV-encoded
// delay as its input sequence.
func (v *Vault) HotTemplate() (*ctv.Template, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return leafTemplate(v.Network, v.Hot, v.Amount-Fee,
		uint32(v.Delay)), nil
}

// ColdTemplate returns the leaf template committed by the cold branch:
// it pays Amount - Fee to the cold address with no timelock.
func (v *Vault) ColdTemplate() (*ctv.Template, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return leafTemplate(v.Network, v.Cold, v.Amount-Fee, 0), nil
}
