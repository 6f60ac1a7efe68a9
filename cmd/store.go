package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sam-oracle/internal/levels"
	"github.com/sells-group/sam-oracle/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "sam-oracle.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// loadTable resolves the active approval-level table: an explicit --table
// flag wins, then the configured table file, then the built-in default.
func loadTable(flagPath string) (levels.Table, error) {
	path := flagPath
	if path == "" {
		path = cfg.Levels.TableFile
	}
	if path == "" {
		return levels.Default(), nil
	}
	return levels.LoadFile(path)
}
