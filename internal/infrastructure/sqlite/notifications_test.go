package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maverick1978/3dlabmod1/internal/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNotificationRepo_CreateAndListAll(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Nueva tarea asignada", "Revisar la tarea de matemáticas.", "Tareas", "Mensaje por defecto")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.Read)
	assert.Equal(t, "Tareas", created.Type)
	assert.False(t, created.Timestamp.IsZero())

	all, err := repo.ListAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "Nueva tarea asignada", all[0].Title)
	assert.Equal(t, "Revisar la tarea de matemáticas.", all[0].Detail)
	assert.False(t, all[0].Read)
}

func TestNotificationRepo_ListAllFiltersByType(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "Tarea", "Detalle tarea", "Tareas", "m")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Mensaje", "Detalle mensaje", "Mensajes", "m")
	require.NoError(t, err)

	tareas, err := repo.ListAll(ctx, "Tareas")
	require.NoError(t, err)
	require.Len(t, tareas, 1)
	assert.Equal(t, "Tarea", tareas[0].Title)

	none, err := repo.ListAll(ctx, "Calificaciones")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNotificationRepo_MarkReadIsIdempotent(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "t", "d", "general", "m")
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(ctx, created.ID))
	// Second call is a no-op, not an error.
	require.NoError(t, repo.MarkRead(ctx, created.ID))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestNotificationRepo_MarkReadUnknownID(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))

	err := repo.MarkRead(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationRepo_DeleteRemovesRow(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "t", "d", "general", "m")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	all, err := repo.ListAll(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)

	// Second delete fails with not found.
	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationRepo_IDsAreNeverReused(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "a", "d", "general", "m")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Create(ctx, "b", "d", "general", "m")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestNotificationRepo_TimestampImmutableAcrossMarkRead(t *testing.T) {
	repo := NewNotificationRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "t", "d", "general", "m")
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(ctx, created.ID))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Timestamp.Equal(created.Timestamp))
}
