package backend

import (
	"context"
	"fmt"
	"log/slog"

	fsstore "expensed/internal/store/firestore"
	"expensed/internal/store/memory"
	"expensed/internal/store/sqlite"
)

// Factory opens exactly one store variant per process. The result is threaded
// to the HTTP layer explicitly; no package-level store exists anywhere.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Open builds the store selected by config.
func (f *Factory) Open(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case KindFirebase:
		return f.openFirebase(ctx, config)
	case KindSQLite:
		return f.openSQLite(config)
	case KindMemory:
		return f.openMemory()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *Factory) openFirebase(ctx context.Context, config Config) (*Result, error) {
	s, err := fsstore.New(ctx, fsstore.Options{
		ProjectID:       config.FirebaseProjectID,
		CredentialsFile: config.FirebaseCredentialsFile,
		CredentialsJSON: config.FirebaseCredentialsJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize firestore store: %w", err)
	}

	f.logger.Info("Initialized Firestore backend", "project", config.FirebaseProjectID)
	return &Result{Store: s, Kind: KindFirebase, Cleanup: s.Close}, nil
}

func (f *Factory) openSQLite(config Config) (*Result, error) {
	s, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite store: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return &Result{Store: s, Kind: KindSQLite, Cleanup: s.Close}, nil
}

func (f *Factory) openMemory() (*Result, error) {
	f.logger.Info("Initialized memory backend")
	return &Result{Store: memory.New(), Kind: KindMemory, Cleanup: nil}, nil
}
