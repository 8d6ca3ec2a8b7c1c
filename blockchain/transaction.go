package blockchain

import (
	"errors"

	"github.com/holiman/uint256"
)

var (
	ErrAccountExists      = errors.New("account id already exists")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrNonGenesisMint     = errors.New("initial supply can only be minted in the genesis block")
	ErrBalanceOverflow    = errors.New("balance overflow")
	ErrUnknownTransaction = errors.New("unknown transaction")
)

// CreateAccount registers id as a new user account.
func CreateAccount(id AccountId) TransactionData {
	return TransactionData{Kind: TxCreateAccount, Account: id}
}

// MintInitialSupply credits amount to an existing account. Only legal
// inside the genesis block.
func MintInitialSupply(to AccountId, amount *uint256.Int) TransactionData {
	return TransactionData{Kind: TxMintInitialSupply, To: to, Amount: amount}
}

// Transfer moves amount from the transaction sender to another account.
// The variant is modeled but has no execution semantics yet; executing it
// fails with ErrUnknownTransaction.
func Transfer(to AccountId, amount *uint256.Int) TransactionData {
	return TransactionData{Kind: TxTransfer, To: to, Amount: amount}
}

// NewTransaction builds an unsigned transaction with zero nonce and
// timestamp. Timestamping and signing happen outside this package.
func NewTransaction(data TransactionData, from AccountId) *Transaction {
	return &Transaction{Data: data, From: from}
}

// Execute applies the transaction's state transition against state.
// isGenesis marks execution inside the first block of a chain, the only
// place minting is legal.
func (tx *Transaction) Execute(state WorldState, isGenesis bool) error {
	switch tx.Data.Kind {
	case TxCreateAccount:
		return state.CreateAccount(tx.Data.Account, AccountUser)

	case TxMintInitialSupply:
		if !isGenesis {
			return ErrNonGenesisMint
		}
		account, ok := state.GetAccountByID(tx.Data.To)
		if !ok {
			return ErrInvalidAccount
		}
		sum, overflow := new(uint256.Int).AddOverflow(account.Balance, tx.Data.Amount)
		if overflow {
			return ErrBalanceOverflow
		}
		account.Balance = sum
		return nil

	case TxTransfer:
		return ErrUnknownTransaction

	default:
		return ErrUnknownTransaction
	}
}
