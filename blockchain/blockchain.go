package blockchain

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidBlockHash = errors.New("block has invalid hash")
	ErrEmptyBlock       = errors.New("block has no transactions")
)

// Blockchain owns the canonical chain, the current account table and the
// pending-transaction pool. All state mutation goes through AppendBlock;
// the single lock keeps block execution atomic for concurrent embedders.
type Blockchain struct {
	mu       sync.RWMutex
	blocks   Chain[*Block]
	accounts Accounts
	txPool   []*Transaction
}

func NewBlockchain() *Blockchain {
	return &Blockchain{accounts: make(Accounts)}
}

func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.blocks.Len()
}

// AppendBlock verifies the block, executes its transactions in order
// against the account table and, on success, appends it to the chain.
// Execution is all-or-nothing: the first failing transaction restores the
// table to its pre-block state and the block is discarded.
func (bc *Blockchain) AppendBlock(block *Block) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if !block.Verify() {
		return ErrInvalidBlockHash
	}
	if len(block.Transactions) == 0 {
		return ErrEmptyBlock
	}

	isGenesis := bc.blocks.Len() == 0

	snapshot := bc.accounts.Clone()
	for i, tx := range block.Transactions {
		if err := tx.Execute(bc.accounts, isGenesis); err != nil {
			bc.accounts = snapshot
			log.WithFields(log.Fields{"block": block.Hash, "tx": i}).
				Warnf("rolled back account state: %v", err)
			return fmt.Errorf("error during transaction execution: %w", err)
		}
	}

	bc.blocks.Append(block)
	log.WithFields(log.Fields{
		"height": bc.blocks.Len(),
		"hash":   block.Hash,
		"txs":    len(block.Transactions),
	}).Debug("block appended")
	return nil
}

// GetLastBlockHash returns the freshly recomputed hash of the head block,
// the PrevHash seed for the next block under construction. An empty chain
// yields the empty hash.
func (bc *Blockchain) GetLastBlockHash() Hash {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	head, ok := bc.blocks.Head()
	if !ok {
		return ""
	}
	return HashBlock(head)
}

func (bc *Blockchain) GetAccountByID(id AccountId) (*Account, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.accounts.GetAccountByID(id)
}
