package cinerec

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/config"
	"github.com/cognicore/cinerec/pkg/cinerec/inference"
	"github.com/cognicore/cinerec/pkg/cinerec/inference/prolog"
	"github.com/cognicore/cinerec/pkg/cinerec/inference/simple"
	"github.com/cognicore/cinerec/pkg/cinerec/store"
	"github.com/cognicore/cinerec/pkg/cinerec/store/memstore"
	"github.com/cognicore/cinerec/pkg/cinerec/store/sqlite"
)

// Open builds the catalog and the configured rule engine. A rule engine that
// fails to start is logged and recorded; filtering still works and
// Recommend reports the failure.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Cinerec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cat := catalog.Default()

	rules, err := OpenRules(ctx, cfg, cat)
	if err != nil {
		logger.Warn("rule engine unavailable", zap.String("engine", cfg.Engine),
			zap.String("fact_store", cfg.FactStore), zap.Error(err))
	} else {
		logger.Debug("rule engine ready", zap.String("engine", cfg.Engine),
			zap.String("fact_store", cfg.FactStore), zap.Int("facts", cat.Len()))
	}

	return New(Options{
		Catalog:  cat,
		Rules:    rules,
		RulesErr: err,
		Logger:   logger,
	}), nil
}

// OpenRules seeds a fact store from cat and starts the configured engine.
func OpenRules(ctx context.Context, cfg config.Config, cat *catalog.Catalog) (inference.Engine, error) {
	switch cfg.Engine {
	case config.EngineProlog:
		e, err := prolog.New(ctx, cat.Facts())
		if err != nil {
			return nil, err
		}
		return e, nil

	case config.EngineSimple, "":
		s, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := store.Seed(ctx, s, cat); err != nil {
			s.Close()
			return nil, err
		}
		e, err := simple.New(s)
		if err != nil {
			s.Close()
			return nil, err
		}
		return e, nil
	}
	return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.FactStore {
	case config.StoreSQLite:
		s, err := sqlite.OpenSQLite(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite fact store: %w", err)
		}
		return s, nil
	case config.StoreMemory, "":
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown fact store %q", cfg.FactStore)
}
