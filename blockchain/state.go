package blockchain

import (
	"fmt"

	"github.com/holiman/uint256"
)

// WorldState is the mutable account table a transaction executes against.
// Execution is written against this capability set rather than the
// Blockchain itself, so the transition logic is testable on a bare map.
type WorldState interface {
	CreateAccount(id AccountId, kind AccountType) error
	GetAccountByID(id AccountId) (*Account, bool)
}

// Accounts is the in-memory account table keyed by account id. It is the
// WorldState implementation the Blockchain owns.
type Accounts map[AccountId]*Account

func NewAccount(kind AccountType) *Account {
	return &Account{Type: kind, Balance: new(uint256.Int)}
}

func (a Accounts) CreateAccount(id AccountId, kind AccountType) error {
	if _, ok := a[id]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, id)
	}
	a[id] = NewAccount(kind)
	return nil
}

func (a Accounts) GetAccountByID(id AccountId) (*Account, bool) {
	account, ok := a[id]
	return account, ok
}

// Clone deep-copies the table, balances included. AppendBlock snapshots
// through this before executing a block so a failed block rolls back
// without residue.
func (a Accounts) Clone() Accounts {
	snapshot := make(Accounts, len(a))
	for id, account := range a {
		snapshot[id] = &Account{Type: account.Type, Balance: account.Balance.Clone()}
	}
	return snapshot
}
