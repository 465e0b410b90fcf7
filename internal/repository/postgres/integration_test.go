//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ashabalin/diary-server/internal/model"
	repo "github.com/ashabalin/diary-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "diary_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/diary_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn)
	cards := repo.NewCardRepository(conn)

	var alice, bob model.User

	t.Run("user_repository", func(t *testing.T) {
		alice, err = users.Create(ctx, model.User{Login: "alice", Password: "secret"})
		require.NoError(t, err)
		require.NotZero(t, alice.ID)

		bob, err = users.Create(ctx, model.User{Login: "bob", Password: "hunter2"})
		require.NoError(t, err)
		require.Greater(t, bob.ID, alice.ID)

		byID, err := users.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", byID.Login)

		byCreds, err := users.GetByCredentials(ctx, "alice", "secret")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byCreds.ID)

		_, err = users.GetByCredentials(ctx, "alice", "wrong")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("duplicate_logins_permitted", func(t *testing.T) {
		second, err := users.Create(ctx, model.User{Login: "alice", Password: "other"})
		require.NoError(t, err)

		// the lowest id wins when credentials match several rows
		matched, err := users.GetByCredentials(ctx, "alice", "secret")
		require.NoError(t, err)
		require.Equal(t, alice.ID, matched.ID)
		require.NotEqual(t, second.ID, matched.ID)
	})

	t.Run("card_repository", func(t *testing.T) {
		first, err := cards.Create(ctx, model.Card{Title: "T", Subtitle: "S", Body: "Body", UserID: alice.ID})
		require.NoError(t, err)
		require.Equal(t, alice.ID, first.UserID)

		second, err := cards.Create(ctx, model.Card{Title: "T2", Subtitle: "S2", Body: "Body2", UserID: alice.ID})
		require.NoError(t, err)

		got, err := cards.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, "T", got.Title)
		require.Equal(t, "S", got.Subtitle)
		require.Equal(t, "Body", got.Body)

		_, err = cards.GetByID(ctx, 999999)
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := cards.GetByUserID(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, first.ID, list[0].ID)
		require.Equal(t, second.ID, list[1].ID)

		empty, err := cards.GetByUserID(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}
