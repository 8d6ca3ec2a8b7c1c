package blockchain

import "github.com/holiman/uint256"

// NewGenesisBlock forges the first block of a chain: it creates the
// treasury account and mints the initial coin supply into it. The caller
// still sets a nonce and submits the block through AppendBlock.
func NewGenesisBlock(treasury AccountId, supply *uint256.Int) *Block {
	block := NewBlock("")
	block.AddTransaction(NewTransaction(CreateAccount(treasury), ""))
	block.AddTransaction(NewTransaction(MintInitialSupply(treasury, supply), ""))
	return block
}
