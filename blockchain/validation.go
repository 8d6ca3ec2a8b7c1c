package blockchain

import "fmt"

// ErrBrokenLink reports a prev-hash mismatch between two adjacent blocks.
// Indices count from the genesis block, which is block 1.
type ErrBrokenLink struct {
	Block, Prev int
}

func (e ErrBrokenLink) Error() string {
	return fmt.Sprintf("block %d prev hash doesn't match block %d hash", e.Block, e.Prev)
}

// Validate walks the chain newest to oldest and checks that every block
// self-verifies, that exactly the genesis block lacks a previous hash and
// that the hash links are intact end to end. It reports the first
// inconsistency found and never mutates the chain or the account table.
func (bc *Blockchain) Validate() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	blockNum := bc.blocks.Len()
	var prevHash Hash

	for i := 0; i < bc.blocks.Len(); i++ {
		block := bc.blocks.At(i)
		isGenesis := blockNum == 1

		if !block.Verify() {
			return fmt.Errorf("block %d has invalid hash", blockNum)
		}
		if !isGenesis && block.PrevHash == "" {
			return fmt.Errorf("block %d doesn't have prev hash", blockNum)
		}
		if isGenesis && block.PrevHash != "" {
			return fmt.Errorf("genesis block %d should not have prev hash", blockNum)
		}
		// prevHash is the newer neighbour's back-link; it must name this
		// block's stored hash.
		if i != 0 && prevHash != block.Hash {
			return ErrBrokenLink{Block: blockNum + 1, Prev: blockNum}
		}

		prevHash = block.PrevHash
		blockNum--
	}
	return nil
}
