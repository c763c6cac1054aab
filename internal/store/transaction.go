package store

import (
	"context"
	"sync"

	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

// transactionStore is an append-only ledger held in memory.
type transactionStore struct {
	mu     sync.RWMutex
	nextID int
	txs    []models.Transaction
}

func NewTransactionStore() *transactionStore {
	return &transactionStore{nextID: 1}
}

// Append assigns the next ledger id to tx and stores it.
func (s *transactionStore) Append(_ context.Context, tx models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.nextID
	s.nextID++
	s.txs = append(s.txs, tx)
	return tx
}

// RecentForUser returns at most limit transactions owned by uid in ledger
// order. The result is a fresh slice.
func (s *transactionStore) RecentForUser(_ context.Context, uid string, limit int) []models.Transaction {
	out := make([]models.Transaction, 0)
	if limit <= 0 {
		return out
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.txs {
		if tx.UserID != uid {
			continue
		}
		out = append(out, tx)
		if len(out) == limit {
			break
		}
	}
	return out
}
