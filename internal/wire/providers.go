package wire

import (
	"context"
	"time"

	"agilefinance/internal/boleto"
	"agilefinance/internal/chat"
	"agilefinance/internal/common"
	"agilefinance/internal/config"
	"agilefinance/internal/dbmongo"
	"agilefinance/internal/dbsql"
	"agilefinance/internal/logger"
	"agilefinance/internal/media"
	"agilefinance/internal/queue"
	"agilefinance/internal/realtime"
	"agilefinance/internal/server"
	"agilefinance/internal/systemconfig"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Application is everything cmd/api runs. Mongo, Redis and Relay are nil
// when the matching backend is disabled or unreachable.
type Application struct {
	Config       *config.Config
	Logger       *zap.Logger
	DB           *gorm.DB
	Mongo        *dbmongo.MongoClient
	Redis        *redis.Client
	Hub          *realtime.Hub
	Relay        *realtime.RedisRelay
	Router       *mux.Router
	Workers      *queue.WorkerPool
	Health       *server.HealthServer
	SystemConfig systemconfig.Service
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := logger.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

func ProvideDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := dbsql.NewDatabase(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// ProvideMongo degrades to no file storage when GridFS is unreachable.
func ProvideMongo(cfg *config.Config, log *zap.Logger) (*dbmongo.MongoClient, func()) {
	if !cfg.MongoDB.Enabled {
		log.Info("mongodb disabled, file storage off")
		return nil, func() {}
	}
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Warn("mongodb unavailable, file storage off", zap.Error(err))
		return nil, func() {}
	}
	return client, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	}
}

func ProvideFileStore(mongo *dbmongo.MongoClient) common.FileStore {
	if mongo == nil {
		return nil
	}
	return dbmongo.NewFileStorage(mongo)
}

// ProvideRedis degrades to a single-instance hub and an in-process queue
// when Redis is unreachable.
func ProvideRedis(cfg *config.Config, log *zap.Logger) (*redis.Client, func()) {
	if !cfg.Redis.Enabled {
		log.Info("redis disabled, using local hub and in-memory queue")
		return nil, func() {}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, using local hub and in-memory queue", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = rdb.Close()
		return nil, func() {}
	}
	return rdb, func() { _ = rdb.Close() }
}

func ProvideRelay(hub *realtime.Hub, rdb *redis.Client, log *zap.Logger) *realtime.RedisRelay {
	if rdb == nil {
		return nil
	}
	return realtime.NewRedisRelay(hub, rdb, log)
}

func ProvideQueue(cfg *config.Config, rdb *redis.Client) queue.Queue {
	if rdb == nil {
		return queue.NewMemoryQueue(0)
	}
	return queue.NewRedisQueue(rdb, cfg.Queue.BoletoQueue)
}

func ProvideJWT(cfg *config.Config) *common.JWTManager {
	return common.NewJWTManager(cfg.JWT)
}

func ProvideEvolutionClient(cfg *config.Config, log *zap.Logger) *chat.EvolutionClient {
	return chat.NewEvolutionClient(cfg.Evolution, log)
}

func ProvideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func ProvideMediaHandler(files common.FileStore, log *zap.Logger) *media.Handler {
	if files == nil {
		return nil
	}
	return media.NewHandler(files, log)
}

func ProvideWorkers(q queue.Queue, cfg *config.Config, boletos boleto.BoletoService, log *zap.Logger) *queue.WorkerPool {
	pool := queue.NewWorkerPool(q, cfg.Queue, log)
	pool.Register(boleto.JobGenerate, boletos.Process)
	return pool
}

func ProvideChecks(db *gorm.DB, mongo *dbmongo.MongoClient, rdb *redis.Client) server.Checks {
	checks := server.Checks{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if mongo != nil {
		checks["mongodb"] = func(ctx context.Context) error {
			return mongo.Client.Ping(ctx, nil)
		}
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
