// Package results owns the latest-result slot. Each session has exactly
// one slot, overwritten on every completed upload (last-write-wins, no
// staleness check); the presenter reads it fresh on every page render.
package results

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"neuroview/domain"
)

type Repository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRepository(db *badger.DB, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

func resultKey(sessionID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("result:%s", sessionID))
}

// Store overwrites the slot for this session.
func (r *Repository) Store(sessionID uuid.UUID, resp *domain.PredictionResponse) error {
	bytes, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(resultKey(sessionID), bytes)
	})
	if err != nil {
		return err
	}
	r.log.Debug("Latest result overwritten", "session_id", sessionID, "status", resp.Status)
	return nil
}

// Latest returns nil (not an error) when no upload has completed yet;
// the presenter turns nil into the waiting view.
func (r *Repository) Latest(sessionID uuid.UUID) (*domain.PredictionResponse, error) {
	var resp *domain.PredictionResponse
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(resultKey(sessionID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			resp = new(domain.PredictionResponse)
			return json.Unmarshal(value, resp)
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Clear drops the slot, typically on logout.
func (r *Repository) Clear(sessionID uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(resultKey(sessionID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
