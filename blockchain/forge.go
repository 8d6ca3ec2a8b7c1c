package blockchain

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

var ErrEmptyPool = errors.New("transaction pool is empty")

// SubmitTransaction stages a transaction in the pending pool for a later
// ForgeBlock call. The pool is never consulted by AppendBlock.
func (bc *Blockchain) SubmitTransaction(tx *Transaction) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	bc.txPool = append(bc.txPool, tx)
}

// PendingTransactions returns a copy of the pending pool in submission
// order.
func (bc *Blockchain) PendingTransactions() []*Transaction {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	pending := make([]*Transaction, len(bc.txPool))
	copy(pending, bc.txPool)
	return pending
}

// ForgeBlock drains the pending pool into a new block linked to the
// current head. Forging only assembles: nothing is executed or appended
// until the caller sets a nonce and submits the block via AppendBlock.
func (bc *Blockchain) ForgeBlock() (*Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(bc.txPool) == 0 {
		return nil, ErrEmptyPool
	}

	var prevHash Hash
	if head, ok := bc.blocks.Head(); ok {
		prevHash = HashBlock(head)
	}

	block := NewBlock(prevHash)
	for _, tx := range bc.txPool {
		block.AddTransaction(tx)
	}
	bc.txPool = nil

	log.WithFields(log.Fields{
		"txs":  len(block.Transactions),
		"prev": prevHash,
	}).Debug("forged block from pending pool")
	return block, nil
}
