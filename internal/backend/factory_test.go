package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"expensed/internal/config"
)

func TestFromAppConfigAutoDetect(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want Kind
	}{
		{"explicit wins", config.Config{StorageBackend: "sqlite", FirebaseProjectID: "p"}, KindSQLite},
		{"credentials select firebase", config.Config{FirebaseProjectID: "p"}, KindFirebase},
		{"nothing selects memory", config.Config{}, KindMemory},
	}
	for _, tc := range cases {
		got, err := FromAppConfig(&tc.cfg)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got.Type, tc.name)
	}
}

func TestFromAppConfigRejectsUnknownBackend(t *testing.T) {
	_, err := FromAppConfig(&config.Config{StorageBackend: "redis"})
	require.Error(t, err)

	_, err = FromAppConfig(nil)
	require.Error(t, err)
}

func TestOpenMemory(t *testing.T) {
	result, err := NewFactory(nil).Open(context.Background(), Config{Type: KindMemory})
	require.NoError(t, err)
	require.Equal(t, KindMemory, result.Kind)
	require.NotNil(t, result.Store)
	require.Nil(t, result.Cleanup)
}

func TestOpenSQLite(t *testing.T) {
	result, err := NewFactory(nil).Open(context.Background(), Config{
		Type:         KindSQLite,
		SQLiteDBPath: filepath.Join(t.TempDir(), "expenses.db"),
	})
	require.NoError(t, err)
	require.Equal(t, KindSQLite, result.Kind)
	require.NotNil(t, result.Store)
	require.NotNil(t, result.Cleanup)
	require.NoError(t, result.Cleanup())
}

func TestOpenValidatesConfig(t *testing.T) {
	_, err := NewFactory(nil).Open(context.Background(), Config{Type: KindFirebase})
	require.Error(t, err, "firebase backend without a project id must be rejected")

	_, err = NewFactory(nil).Open(context.Background(), Config{Type: Kind("bogus")})
	require.Error(t, err)
}
