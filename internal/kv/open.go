package kv

import (
	"context"
	"fmt"

	"github.com/isebirbax/portfolio/internal/config"
	"github.com/isebirbax/portfolio/internal/database"
	"github.com/isebirbax/portfolio/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Open builds the backend selected by cfg.Store.Backend and checks it is reachable.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		logger.Warnf("using in-memory store; data is lost on restart")
		return NewMemory(), nil
	case config.BackendFile:
		f, err := OpenFile(cfg.Store.FilePath)
		if err != nil {
			return nil, err
		}
		logger.Infof("using file store at %s", cfg.Store.FilePath)
		return f, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr(), err)
		}
		logger.Infof("using redis store at %s (prefix %q)", cfg.Redis.Addr(), cfg.Redis.KeyPrefix)
		return NewRedis(client, cfg.Redis.KeyPrefix), nil
	case config.BackendMongo:
		client, err := database.ConnectMongoRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			return nil, err
		}
		logger.Infof("using mongo store %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		return NewMongoOwned(client, cfg.MongoDB.Database, cfg.MongoDB.Collection), nil
	case config.BackendMinIO:
		m, err := NewMinIO(ctx, MinIOOptions{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
			Prefix:    cfg.MinIO.Prefix,
		})
		if err != nil {
			return nil, err
		}
		logger.Infof("using minio store bucket=%s prefix=%q", cfg.MinIO.Bucket, cfg.MinIO.Prefix)
		return m, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
