package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"neuroview/errors"
)

// Record is what survives a browser refresh: the bearer token issued by the
// remote API plus enough context to display the account. The token's
// presence gates the main application routes.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions in BadgerDB. Keys are "session:{uuid}"; values
// are JSON-encoded records with a TTL so abandoned sessions expire on
// their own.
type Store struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

func NewStore(db *badger.DB, log *slog.Logger, ttl time.Duration) *Store {
	return &Store{db: db, log: log, ttl: ttl}
}

func sessionKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("session:%s", id))
}

// Create mints a new session around a backend token.
func (s *Store) Create(email, token string) (Record, error) {
	record := Record{
		ID:        uuid.New(),
		Email:     email,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	bytes, err := json.Marshal(record)
	if err != nil {
		return Record{}, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(sessionKey(record.ID), bytes).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return Record{}, err
	}

	s.log.Info("Session created", "session_id", record.ID, "email", email)
	return record, nil
}

func (s *Store) Get(id uuid.UUID) (Record, error) {
	var record Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return Record{}, errors.ErrSessionNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// Delete removes the session unconditionally; logout always succeeds.
func (s *Store) Delete(id uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(sessionKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
