package blockchain

// NewBlock constructs an empty block linked to prevHash; pass the empty
// hash for a genesis block. The block's own hash is computed immediately
// and refreshed by every mutator, so a block is self-consistent between
// any two calls.
func NewBlock(prevHash Hash) *Block {
	b := &Block{PrevHash: prevHash}
	b.updateHash()
	return b
}

func (b *Block) SetNonce(nonce uint64) {
	b.Nonce = nonce
	b.updateHash()
}

// AddTransaction appends tx to the block. Transaction order is execution
// order.
func (b *Block) AddTransaction(tx *Transaction) {
	b.Transactions = append(b.Transactions, tx)
	b.updateHash()
}

// Verify reports whether the stored hash matches the block's current
// content. A field altered without going through a mutator, or a hash that
// was never set, makes this false.
func (b *Block) Verify() bool {
	return b.Hash != "" && b.Hash == HashBlock(b)
}

func (b *Block) updateHash() {
	b.Hash = HashBlock(b)
}
