package results

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"neuroview/domain"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestRepository_EmptySlotIsNil(t *testing.T) {
	req := require.New(t)
	repo := newRepo(t)

	latest, err := repo.Latest(uuid.New())
	req.NoError(err)
	req.Nil(latest)
}

func TestRepository_LastWriteWins(t *testing.T) {
	req := require.New(t)
	repo := newRepo(t)
	sessionID := uuid.New()

	first := &domain.PredictionResponse{
		Status:            domain.StatusSuccess,
		IsValidBrainImage: true,
		TopPrediction:     &domain.TopPrediction{Label: "Glioma", Confidence: 0.9},
	}
	second := &domain.PredictionResponse{Status: domain.StatusInvalidImage}

	req.NoError(repo.Store(sessionID, first))
	req.NoError(repo.Store(sessionID, second))

	latest, err := repo.Latest(sessionID)
	req.NoError(err)
	req.Equal(domain.StatusInvalidImage, latest.Status)
	req.Nil(latest.TopPrediction)
}

func TestRepository_SlotsAreIsolatedPerSession(t *testing.T) {
	req := require.New(t)
	repo := newRepo(t)

	a, b := uuid.New(), uuid.New()
	req.NoError(repo.Store(a, &domain.PredictionResponse{Status: domain.StatusError, Error: "boom"}))

	latest, err := repo.Latest(b)
	req.NoError(err)
	req.Nil(latest)
}

func TestRepository_Clear(t *testing.T) {
	req := require.New(t)
	repo := newRepo(t)
	sessionID := uuid.New()

	req.NoError(repo.Store(sessionID, &domain.PredictionResponse{Status: domain.StatusSuccess}))
	req.NoError(repo.Clear(sessionID))

	latest, err := repo.Latest(sessionID)
	req.NoError(err)
	req.Nil(latest)

	req.NoError(repo.Clear(sessionID))
}
