package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/config"
	"github.com/Freeeeeet/health_wallet/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const mongoCollection = "local_storage"

// OpenStorage открывает локальное хранилище выбранным драйвером
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageLevelDB:
		storage, err := repository.OpenLevelDB(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		logger.Info("✅ LevelDB storage opened", zap.String("path", cfg.StoragePath))
		return storage, nil

	case config.StoragePostgres:
		return openPostgres(ctx, cfg, logger)

	case config.StorageMongo:
		return openMongo(ctx, cfg, logger)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("✅ Connected to PostgreSQL")

	migrator, err := NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return repository.NewPostgresStorage(pool), nil
}

func openMongo(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Storage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("✅ Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	return repository.NewMongoStorage(client.Database(cfg.MongoDatabase).Collection(mongoCollection)), nil
}
