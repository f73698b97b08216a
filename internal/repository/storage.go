package repository

import (
	"context"
	"fmt"

	"catalog_service/config"
	"catalog_service/internal/domain"
	"catalog_service/pkg/db"

	"github.com/sirupsen/logrus"
)

// Open builds the CategoryRepository selected by cfg.StorageDriver, making
// sure the schema exists. The returned func releases the underlying connection.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (domain.CategoryRepository, func(), error) {
	var (
		repo    domain.CategoryRepository
		closeFn = func() {}
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo = NewPostgresCategoryRepository(database, logger)
		closeFn = func() {
			if err := database.Close(); err != nil {
				logger.Errorf("Error closing database connection: %v", err)
			}
		}
	case config.DriverPgx:
		pool, err := db.ConnectPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo = NewPgxCategoryRepository(pool, logger)
		closeFn = pool.Close
	case config.DriverMemory:
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return NewMemoryCategoryRepository(logger), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("invalid storage driver %q", cfg.StorageDriver)
	}

	if sm, ok := repo.(SchemaManager); ok {
		if err := sm.EnsureSchema(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
	}
	logger.Infof("Storage '%s' ready", cfg.StorageDriver)
	return repo, closeFn, nil
}
