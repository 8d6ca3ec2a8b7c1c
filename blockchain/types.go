package blockchain

import "github.com/holiman/uint256"

// Hash is a hex-encoded Blake2s-256 digest. The empty string means "no
// hash"; only a genesis block's PrevHash may carry it.
type Hash string

// AccountId is the opaque key into the account table.
type AccountId string

type AccountType uint8

const (
	AccountUser AccountType = iota
	AccountContract
)

type Account struct {
	Type    AccountType  `json:"type"`
	Balance *uint256.Int `json:"balance"`
}

// TxKind tags the TransactionData union.
type TxKind uint8

const (
	TxCreateAccount TxKind = iota + 1
	TxMintInitialSupply
	TxTransfer
)

// TransactionData is the tagged payload of a transaction. Which fields are
// meaningful depends on Kind; use the constructors in transaction.go.
type TransactionData struct {
	Kind    TxKind       `json:"kind"`
	Account AccountId    `json:"account,omitempty"`
	To      AccountId    `json:"to,omitempty"`
	Amount  *uint256.Int `json:"amount,omitempty"`
}

type Transaction struct {
	Nonce     uint64          `json:"nonce"`
	Timestamp uint64          `json:"timestamp"`
	From      AccountId       `json:"from,omitempty"`
	Data      TransactionData `json:"data"`
	Signature string          `json:"signature,omitempty"` // carried, never verified
}

type Block struct {
	Nonce        uint64         `json:"nonce"`
	Hash         Hash           `json:"hash"`
	PrevHash     Hash           `json:"prev_hash"`
	Transactions []*Transaction `json:"transactions"`
}
