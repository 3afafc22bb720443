package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"pressing/internal/adapters/out/postgres"
	"pressing/internal/adapters/out/postgres/orderrepo"
	"pressing/internal/adapters/out/redisstore"
	"pressing/internal/core/ports"

	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenStorage connects the backend named by configs.StorageDriver and
// returns its unit of work factory with a function releasing the connection.
func OpenStorage(ctx context.Context, configs Config, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	switch configs.StorageDriver {
	case StorageDriverPostgres:
		return openPostgres(configs, logger)
	case StorageDriverRedis:
		return openRedis(ctx, configs, logger)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", configs.StorageDriver)
	}
}

func openPostgres(configs Config, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = orderrepo.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Storage ready", "driver", StorageDriverPostgres, "host", configs.DBHost, "database", configs.DBName)
	return postgres.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil
}

func openRedis(ctx context.Context, configs Config, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	store := redisstore.NewCollectionStore(client)
	repository := redisstore.NewOrderRepository(store, configs.RedisCollection)

	logger.Info("Storage ready", "driver", StorageDriverRedis, "addr", configs.RedisAddr, "collection", configs.RedisCollection)
	return redisstore.NewUnitOfWorkFactory(repository), client.Close, nil
}
