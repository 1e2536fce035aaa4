package sessions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/server/models"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreateSession(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	expires := time.Now().Add(12 * time.Hour)
	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("s1", "u1", false, expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Session{
		ID:      "s1",
		UserID:  "u1",
		Expires: expires,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSession(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "remember", "expires_at", "created_at"}).
			AddRow("s1", "u1", true, now.Add(time.Hour), now))

	s, err := repo.Find(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)
	assert.True(t, s.Remember)
}

func TestFindSessionNotFound(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteSessionIdempotent(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// zero rows affected is still success
	assert.NoError(t, repo.Delete(context.Background(), "s1"))
}
