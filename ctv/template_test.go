// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"
)

const (
	regtestAddr  = "bcrt1qhsl0kagxnlxrx09xzw6clmxcxktldx2npk4l4z"
	regtestAddr2 = "bcrt1qxrvrqej2m9mharnpaqnlkzj4acn2mn8km3cjnh"
	mainnetAddr  = "bc1q8cj75jmrpqxv5xah6kmj3423m7mqzdmfxknr9f"
)

// testTemplate returns a template exercising all three output variants
// including a nested tree.
func testTemplate() *Template {
	nested := &Template{
		Network:   Regtest,
		Version:   1,
		Locktime:  0,
		Sequences: []uint32{20},
		Outputs:   []Output{NewAddressOutput(regtestAddr, 99400)},
	}
	return &Template{
		Network:   Regtest,
		Version:   2,
		Locktime:  0,
		Sequences: []uint32{0},
		Outputs: []Output{
			NewTreeOutput(nested, 100000),
			NewDataOutput("unvault marker"),
			NewAddressOutput(regtestAddr2, 5000),
		},
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	tmpl := testTemplate()
	wantHash, err := tmpl.Hash()
	require.NoError(t, err)

	token, err := json.Marshal(tmpl)
	require.NoError(t, err)

	parsed, err := ParseTemplate(token)
	require.NoError(t, err)
	require.Equal(t, tmpl, parsed)

	gotHash, err := parsed.Hash()
	require.NoError(t, err)
	require.Equal(t, wantHash, gotHash)
}

func TestParseTemplateErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  error
	}{{
		name:  "not json",
		token: "{",
		want:  ErrSerialization,
	}, {
		name: "unknown output tag",
		token: `{"network":"regtest","version":1,"locktime":0,` +
			`"sequences":[0],"outputs":[{"type":"script","amount":1}]}`,
		want: ErrSerialization,
	}, {
		name: "tree output without tree",
		token: `{"network":"regtest","version":1,"locktime":0,` +
			`"sequences":[0],"outputs":[{"type":"tree","amount":1}]}`,
		want: ErrSerialization,
	}, {
		name: "address output carrying data",
		token: `{"network":"regtest","version":1,"locktime":0,` +
			`"sequences":[0],"outputs":[{"type":"address",` +
			`"address":"` + regtestAddr + `","amount":1,"data":"x"}]}`,
		want: ErrSerialization,
	}}

	for _, test := range tests {
		_, err := ParseTemplate([]byte(test.token))
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestOutputTagValidation(t *testing.T) {
	var out Output
	err := json.Unmarshal([]byte(`{"type":"nonsense"}`), &out)
	require.ErrorIs(t, err, ErrUnknownOutputType)

	err = json.Unmarshal(
		[]byte(`{"type":"data","data":"x","amount":5}`), &out)
	require.ErrorIs(t, err, ErrUnknownOutputType)
}

func TestMaterializeAddressOutputs(t *testing.T) {
	tmpl := &Template{
		Network:   Regtest,
		Version:   1,
		Sequences: []uint32{0},
		Outputs:   []Output{NewAddressOutput(regtestAddr, 7000)},
	}
	tx, err := tmpl.Tx()
	require.NoError(t, err)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)
	require.EqualValues(t, 7000, tx.TxOut[0].Value)

	// P2WPKH: OP_0 <20-byte program>.
	require.Len(t, tx.TxOut[0].PkScript, 22)
	require.EqualValues(t, txscript.OP_0, tx.TxOut[0].PkScript[0])
}

func TestMaterializeWrongNetwork(t *testing.T) {
	tmpl := &Template{
		Network:   Regtest,
		Version:   1,
		Sequences: []uint32{0},
		Outputs:   []Output{NewAddressOutput(mainnetAddr, 7000)},
	}
	_, err := tmpl.Tx()
	require.ErrorIs(t, err, ErrInvalidAddressForNetwork)

	tmpl.Network = "florinet"
	_, err = tmpl.Tx()
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestMaterializeDataOutput(t *testing.T) {
	tmpl := &Template{
		Network:   Regtest,
		Version:   1,
		Sequences: []uint32{0},
		Outputs:   []Output{NewDataOutput("hello vault")},
	}
	tx, err := tmpl.Tx()
	require.NoError(t, err)
	require.Zero(t, tx.TxOut[0].Value)
	require.EqualValues(t, txscript.OP_RETURN, tx.TxOut[0].PkScript[0])

	// One byte past the carrier limit must fail atomically.
	tmpl.Outputs = []Output{NewDataOutput(
		strings.Repeat("x", txscript.MaxDataCarrierSize+1))}
	_, err = tmpl.Tx()
	require.ErrorIs(t, err, ErrDataTooLarge)
}

func TestMaterializeTreeOutput(t *testing.T) {
	tmpl := testTemplate()
	tx, err := tmpl.Tx()
	require.NoError(t, err)

	// The tree output must be the P2WSH of the child's bare
	// commitment script.
	childHash, err := tmpl.Outputs[0].Tree.Hash()
	require.NoError(t, err)
	commit, err := CommitScript(childHash)
	require.NoError(t, err)
	scriptHash := sha256.Sum256(commit)

	want := append([]byte{txscript.OP_0, 0x20}, scriptHash[:]...)
	require.Equal(t, want, tx.TxOut[0].PkScript)
	require.EqualValues(t, 100000, tx.TxOut[0].Value)
}

func TestTemplateAddress(t *testing.T) {
	tmpl := testTemplate()
	addr, err := tmpl.Address()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr.EncodeAddress(), "bcrt1"))

	again, err := tmpl.Address()
	require.NoError(t, err)
	require.Equal(t, addr.EncodeAddress(), again.EncodeAddress())
}

func TestCommitScript(t *testing.T) {
	hash := make([]byte, 32)
	script, err := CommitScript(hash)
	require.NoError(t, err)

	// OP_DATA_32 <hash> OP_NOP4.
	require.Len(t, script, 34)
	require.EqualValues(t, txscript.OP_DATA_32, script[0])
	require.EqualValues(t, txscript.OP_NOP4, script[33])

	_, err = CommitScript(make([]byte, 31))
	require.ErrorIs(t, err, ErrMalformedCommitment)
}
