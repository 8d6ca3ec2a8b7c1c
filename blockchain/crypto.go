package blockchain

import (
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/crypto/blake2s"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// txPreimage fixes the field order of the hashed transaction content.
// jsoniter emits struct fields in declaration order, so marshaling this is
// a canonical encoding of the (nonce, timestamp, from, data) tuple.
type txPreimage struct {
	Nonce     uint64          `json:"nonce"`
	Timestamp uint64          `json:"timestamp"`
	From      AccountId       `json:"from"`
	Data      TransactionData `json:"data"`
}

type blockPreimage struct {
	PrevHash Hash   `json:"prev_hash"`
	Nonce    uint64 `json:"nonce"`
}

// HashTransaction computes the content digest of a transaction. The
// signature is excluded: a transaction's identity is the signed content.
func HashTransaction(tx *Transaction) Hash {
	h, _ := blake2s.New256(nil)
	preimage, _ := json.Marshal(txPreimage{
		Nonce:     tx.Nonce,
		Timestamp: tx.Timestamp,
		From:      tx.From,
		Data:      tx.Data,
	})
	h.Write(preimage)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

// HashBlock computes the content digest of a block: the canonical encoding
// of (prev_hash, nonce) followed by every transaction digest in order.
func HashBlock(b *Block) Hash {
	h, _ := blake2s.New256(nil)
	preimage, _ := json.Marshal(blockPreimage{PrevHash: b.PrevHash, Nonce: b.Nonce})
	h.Write(preimage)
	for _, tx := range b.Transactions {
		h.Write([]byte(HashTransaction(tx)))
	}
	return Hash(hex.EncodeToString(h.Sum(nil)))
}
