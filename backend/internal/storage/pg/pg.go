package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/itchan-dev/bulletin/shared/config"
	"github.com/itchan-dev/bulletin/shared/logger"
	shared_pg "github.com/itchan-dev/bulletin/shared/storage/pg"
)

// Querier is re-exported so storage methods can run on the pool or inside a transaction.
type Querier = shared_pg.Querier

const queryTimeout = 5 * time.Second

//go:embed migrations/init.sql
var schema string

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := shared_pg.Connect(cfg.Private.Pg, shared_pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	storage := &Storage{db: db}
	if err := storage.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return storage, nil
}

// EnsureSchema creates missing tables and indexes. Existing ones are left as is.
func (s *Storage) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) withTx(fn func(tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return shared_pg.WithTx(ctx, s.db, fn)
}
