// Copyright (c) 2025-2026 The ctvault developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ctv

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/btcsuite/btcd/wire"
)

// TemplateHash computes the BIP-119 default template hash of tx for the
// input at inputIndex.  The digest is the single SHA-256 of, in order:
//
//	version           (4 bytes, little endian)
//	locktime          (4 bytes, little endian)
//	scriptSigs hash   (32 bytes, only when any scriptSig is non-empty)
//	input count       (4 bytes, little endian)
//	sequences hash    (32 bytes)
//	output count      (4 bytes, little endian)
//	outputs hash      (32 bytes)
//	input index       (4 bytes, little endian)
//
// The scriptSigs segment is omitted entirely, not zero filled, when
// every input carries an empty scriptSig.  Witness data never enters
// the hash.
func TemplateHash(tx *wire.MsgTx, inputIndex uint32) []byte {
	var buf bytes.Buffer
	putUint32(&buf, uint32(tx.Version))
	putUint32(&buf, tx.LockTime)
	if digest, ok := scriptSigsHash(tx); ok {
		buf.Write(digest)
	}
	putUint32(&buf, uint32(len(tx.TxIn)))
	buf.Write(sequencesHash(tx))
	putUint32(&buf, uint32(len(tx.TxOut)))
	buf.Write(outputsHash(tx))
	putUint32(&buf, inputIndex)

	digest := sha256.Sum256(buf.Bytes())
	return digest[:]
}

// scriptSigsHash returns the SHA-256 of all inputs' length-prefixed
// scriptSigs in input order.  The second return is false when every
// scriptSig is empty, in which case the segment must not be included
// in the template hash at all.
func scriptSigsHash(tx *wire.MsgTx) ([]byte, bool) {
	empty := true
	for _, txIn := range tx.TxIn {
		if len(txIn.SignatureScript) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return nil, false
	}

	var buf bytes.Buffer
	for _, txIn := range tx.TxIn {
		// Writes to a bytes.Buffer cannot fail.
		_ = wire.WriteVarBytes(&buf, 0, txIn.SignatureScript)
	}
	digest := sha256.Sum256(buf.Bytes())
	return digest[:], true
}

// sequencesHash returns the SHA-256 of all inputs' sequence numbers,
// each serialized as 4 little-endian bytes in input order.
func sequencesHash(tx *wire.MsgTx) []byte {
	var buf bytes.Buffer
	for _, txIn := range tx.TxIn {
		putUint32(&buf, txIn.Sequence)
	}
	digest := sha256.Sum256(buf.Bytes())
	return digest[:]
}

// outputsHash returns the SHA-256 of all outputs in their full
// consensus serialization (value plus length-prefixed script) in
// output order.
func outputsHash(tx *wire.MsgTx) []byte {
	var buf bytes.Buffer
	for _, txOut := range tx.TxOut {
		_ = wire.WriteTxOut(&buf, 0, tx.Version, txOut)
	}
	digest := sha256.Sum256(buf.Bytes())
	return digest[:]
}

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
