package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

// setupTestStore creates a temporary database for testing
func setupTestStore(t *testing.T) (*CredentialStore, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "dashboard-test-*")
	require.NoError(t, err)

	store, err := NewCredentialStore(Config{
		DBPath: filepath.Join(tmpDir, "test.db"),
		Logger: &mockLogger{},
	})
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}
	return store, cleanup
}

func TestCredentialStore_LoadEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestCredentialStore_SaveAndLoad(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "c0ffee-token"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c0ffee-token", token)

	// Saving again replaces, never duplicates.
	require.NoError(t, store.Save(ctx, "new-token"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestCredentialStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "to-be-removed"))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	// Clearing an empty store is fine.
	require.NoError(t, store.Clear(ctx))
}
