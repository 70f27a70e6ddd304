package session

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"neuroview/errors"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_CreateGetDelete(t *testing.T) {
	req := require.New(t)
	store := NewStore(openDB(t), logs.GetLoggerFromLevel(slog.LevelDebug), time.Hour)

	record, err := store.Create("user@example.com", "bearer-token-xyz")
	req.NoError(err)
	req.NotEqual(uuid.Nil, record.ID)

	fetched, err := store.Get(record.ID)
	req.NoError(err)
	req.Equal("user@example.com", fetched.Email)
	req.Equal("bearer-token-xyz", fetched.Token)

	req.NoError(store.Delete(record.ID))
	_, err = store.Get(record.ID)
	req.ErrorIs(err, errors.ErrSessionNotFound)

	// Deleting twice is not an error: logout always succeeds.
	req.NoError(store.Delete(record.ID))
}

func TestStore_UnknownSession(t *testing.T) {
	req := require.New(t)
	store := NewStore(openDB(t), logs.GetLoggerFromLevel(slog.LevelDebug), time.Hour)

	_, err := store.Get(uuid.New())
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	req := require.New(t)
	codec := NewCookieCodec("a configured secret", time.Hour)

	id := uuid.New()
	value, err := codec.Encode(id)
	req.NoError(err)

	decoded, err := codec.Decode(value)
	req.NoError(err)
	req.Equal(id, decoded)
}

func TestCookieCodec_RejectsForeignSignature(t *testing.T) {
	req := require.New(t)

	value, err := NewCookieCodec("secret-one", time.Hour).Encode(uuid.New())
	req.NoError(err)

	_, err = NewCookieCodec("secret-two", time.Hour).Decode(value)
	req.Error(err)
}

func TestCookieCodec_RejectsExpired(t *testing.T) {
	req := require.New(t)
	codec := NewCookieCodec("secret", -time.Minute)

	value, err := codec.Encode(uuid.New())
	req.NoError(err)

	_, err = codec.Decode(value)
	req.Error(err)
}

func TestCookieCodec_RejectsGarbage(t *testing.T) {
	_, err := NewCookieCodec("secret", time.Hour).Decode("not-a-jwt")
	require.Error(t, err)
}
