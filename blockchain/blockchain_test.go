package blockchain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

var accountSeq int

func generateAccountID() AccountId {
	accountSeq++
	return AccountId(fmt.Sprintf("account-%d", accountSeq))
}

func appendBlockWithTx(t *testing.T, bc *Blockchain, nonce uint64, txs ...*Transaction) *Block {
	t.Helper()

	block := NewBlock(bc.GetLastBlockHash())
	block.SetNonce(nonce)
	for _, tx := range txs {
		block.AddTransaction(tx)
	}
	if err := bc.AppendBlock(block); err != nil {
		t.Fatalf("AppendBlock failed: %v", err)
	}
	return block
}

func appendBlock(t *testing.T, bc *Blockchain, nonce uint64) *Block {
	t.Helper()
	return appendBlockWithTx(t, bc, nonce,
		NewTransaction(CreateAccount(generateAccountID()), ""))
}

func TestNewBlockchain(t *testing.T) {
	bc := NewBlockchain()
	if bc.Len() != 0 {
		t.Errorf("expected empty chain, got length %d", bc.Len())
	}
	if hash := bc.GetLastBlockHash(); hash != "" {
		t.Errorf("expected empty last block hash, got %s", hash)
	}
}

func TestAppendBlock(t *testing.T) {
	bc := NewBlockchain()

	appendBlock(t, bc, 1)
	block := appendBlock(t, bc, 2)

	if bc.Len() != 2 {
		t.Errorf("expected length 2, got %d", bc.Len())
	}
	if hash := bc.GetLastBlockHash(); hash != block.Hash {
		t.Errorf("last block hash %s doesn't match head block's %s", hash, block.Hash)
	}
}

func TestAppendGenesisBlock(t *testing.T) {
	bc := NewBlockchain()

	block := NewGenesisBlock("satoshi", uint256.NewInt(100_000_000))
	block.SetNonce(1)
	if err := bc.AppendBlock(block); err != nil {
		t.Fatalf("AppendBlock failed: %v", err)
	}

	satoshi, ok := bc.GetAccountByID("satoshi")
	if !ok {
		t.Fatal("satoshi account missing after genesis")
	}
	if !satoshi.Balance.Eq(uint256.NewInt(100_000_000)) {
		t.Errorf("expected balance 100000000, got %s", satoshi.Balance)
	}
}

func TestAppendRejectsEmptyBlock(t *testing.T) {
	bc := NewBlockchain()

	block := NewBlock("")
	block.SetNonce(1)

	if err := bc.AppendBlock(block); !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("expected ErrEmptyBlock, got %v", err)
	}
	if bc.Len() != 0 {
		t.Error("empty block was appended")
	}
}

func TestAppendRejectsTamperedBlock(t *testing.T) {
	bc := NewBlockchain()

	block := NewBlock("")
	block.SetNonce(1)
	block.AddTransaction(NewTransaction(CreateAccount("alice"), ""))
	block.Nonce = 2 // bypass SetNonce, hash is now stale

	if err := bc.AppendBlock(block); !errors.Is(err, ErrInvalidBlockHash) {
		t.Errorf("expected ErrInvalidBlockHash, got %v", err)
	}
	if _, ok := bc.GetAccountByID("alice"); ok {
		t.Error("rejected block still mutated state")
	}
}

func TestAppendMintBeforeCreateRollsBack(t *testing.T) {
	bc := NewBlockchain()

	// Mint before the account exists: the first transaction must fail and
	// leave the table untouched.
	block := NewBlock("")
	block.SetNonce(1)
	block.AddTransaction(NewTransaction(MintInitialSupply("satoshi", uint256.NewInt(100_000_000)), ""))
	block.AddTransaction(NewTransaction(CreateAccount("satoshi"), ""))

	err := bc.AppendBlock(block)
	if err == nil {
		t.Fatal("expected AppendBlock to fail")
	}
	if !errors.Is(err, ErrInvalidAccount) {
		t.Errorf("expected ErrInvalidAccount, got %v", err)
	}
	if !strings.Contains(err.Error(), "error during transaction execution") {
		t.Errorf("error lacks execution context: %v", err)
	}
	if _, ok := bc.GetAccountByID("satoshi"); ok {
		t.Error("rollback left a partially created account behind")
	}
	if bc.Len() != 0 {
		t.Error("failed block was appended")
	}
}

func TestAppendRollsBackPartialExecution(t *testing.T) {
	bc := NewBlockchain()

	genesis := NewGenesisBlock("satoshi", uint256.NewInt(100_000_000))
	genesis.SetNonce(1)
	if err := bc.AppendBlock(genesis); err != nil {
		t.Fatalf("AppendBlock failed: %v", err)
	}

	// alice and bob apply cleanly, the duplicate bob fails; none of the
	// three may survive.
	block := NewBlock(bc.GetLastBlockHash())
	block.SetNonce(2)
	block.AddTransaction(NewTransaction(CreateAccount("alice"), ""))
	block.AddTransaction(NewTransaction(CreateAccount("bob"), ""))
	block.AddTransaction(NewTransaction(CreateAccount("bob"), ""))

	if err := bc.AppendBlock(block); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	if _, ok := bc.GetAccountByID("satoshi"); !ok {
		t.Error("rollback clobbered an account from an earlier block")
	}
	if _, ok := bc.GetAccountByID("alice"); ok {
		t.Error("alice survived the rollback")
	}
	if _, ok := bc.GetAccountByID("bob"); ok {
		t.Error("bob survived the rollback")
	}
	if bc.Len() != 1 {
		t.Errorf("expected length 1, got %d", bc.Len())
	}
}

func TestAppendRejectsMintOutsideGenesis(t *testing.T) {
	bc := NewBlockchain()

	genesis := NewGenesisBlock("satoshi", uint256.NewInt(100_000_000))
	genesis.SetNonce(1)
	if err := bc.AppendBlock(genesis); err != nil {
		t.Fatalf("AppendBlock failed: %v", err)
	}

	block := NewBlock(bc.GetLastBlockHash())
	block.SetNonce(2)
	block.AddTransaction(NewTransaction(MintInitialSupply("satoshi", uint256.NewInt(1)), ""))

	if err := bc.AppendBlock(block); !errors.Is(err, ErrNonGenesisMint) {
		t.Errorf("expected ErrNonGenesisMint, got %v", err)
	}

	satoshi, _ := bc.GetAccountByID("satoshi")
	if !satoshi.Balance.Eq(uint256.NewInt(100_000_000)) {
		t.Errorf("balance moved on a rejected mint: %s", satoshi.Balance)
	}
}

func TestGetLastBlockHashTracksHead(t *testing.T) {
	bc := NewBlockchain()

	for nonce := uint64(1); nonce <= 4; nonce++ {
		block := appendBlock(t, bc, nonce)
		if hash := bc.GetLastBlockHash(); hash != block.Hash {
			t.Errorf("after append %d: last block hash %s, head block %s",
				nonce, hash, block.Hash)
		}
	}
}
