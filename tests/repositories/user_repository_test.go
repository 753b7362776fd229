package repositories_test

import (
	"context"
	"testing"

	"tracker/src/models"
	"tracker/src/repositories"
	init_test "tracker/tests/init_test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	pool := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, pool)

	ctx := context.Background()
	users := repositories.NewUserRepository(pool)

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		u := &models.User{Username: "alice", PasswordHash: "hash"}
		require.NoError(t, users.Create(ctx, u))
		assert.NotZero(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("duplicate username maps to ErrDuplicateUsername", func(t *testing.T) {
		u := &models.User{Username: "alice", PasswordHash: "other"}
		assert.ErrorIs(t, users.Create(ctx, u), repositories.ErrDuplicateUsername)
	})

	t.Run("get by username round-trips the hash", func(t *testing.T) {
		u, err := users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("unknown username maps to ErrNotFound", func(t *testing.T) {
		_, err := users.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("get all ids lists every account", func(t *testing.T) {
		u := &models.User{Username: "bob", PasswordHash: "hash"}
		require.NoError(t, users.Create(ctx, u))

		ids, err := users.GetAllIDs(ctx)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
	})
}
