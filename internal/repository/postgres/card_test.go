package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashabalin/diary-server/internal/model"
)

func TestCardRepository_Create(t *testing.T) {
	conn, mock := newMockRepo(t)
	repo := NewCardRepository(conn)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO cards (title, subtitle, body, user_id) VALUES ($1, $2, $3, $4) RETURNING id, title, subtitle, body, user_id, created_at`,
	)).
		WithArgs("Monday", "A long day", "Nothing happened.", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "subtitle", "body", "user_id", "created_at"}).
			AddRow(int64(1), "Monday", "A long day", "Nothing happened.", int64(3), now))

	card, err := repo.Create(context.Background(), model.Card{
		Title:    "Monday",
		Subtitle: "A long day",
		Body:     "Nothing happened.",
		UserID:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), card.ID)
	assert.Equal(t, int64(3), card.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows([]string{"id", "title", "subtitle", "body", "user_id", "created_at"}).
				AddRow(int64(10), "Monday", "A long day", "Nothing happened.", int64(3), time.Now()),
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows([]string{"id", "title", "subtitle", "body", "user_id", "created_at"}),
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockRepo(t)
			repo := NewCardRepository(conn)

			mock.ExpectQuery(regexp.QuoteMeta(
				`SELECT id, title, subtitle, body, user_id, created_at FROM cards WHERE id = $1`,
			)).
				WithArgs(int64(10)).
				WillReturnRows(tt.rows)

			card, err := repo.GetByID(context.Background(), 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Monday", card.Title)
				assert.Equal(t, int64(3), card.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCardRepository_GetByUserID(t *testing.T) {
	conn, mock := newMockRepo(t)
	repo := NewCardRepository(conn)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, subtitle, body, user_id, created_at FROM cards WHERE user_id = $1 ORDER BY id ASC`,
	)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "subtitle", "body", "user_id", "created_at"}).
			AddRow(int64(1), "First", "s1", "b1", int64(3), now).
			AddRow(int64(2), "Second", "s2", "b2", int64(3), now))

	cards, err := repo.GetByUserID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(1), cards[0].ID)
	assert.Equal(t, int64(2), cards[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_GetByUserID_Empty(t *testing.T) {
	conn, mock := newMockRepo(t)
	repo := NewCardRepository(conn)

	mock.ExpectQuery("SELECT id, title, subtitle, body, user_id, created_at FROM cards").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "subtitle", "body", "user_id", "created_at"}))

	cards, err := repo.GetByUserID(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
