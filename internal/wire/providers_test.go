package wire

import (
	"context"
	"testing"

	"agilefinance/internal/boleto"
	"agilefinance/internal/config"
	"agilefinance/internal/queue"
	"agilefinance/internal/realtime"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestProvideDisabledBackends(t *testing.T) {
	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{Enabled: false},
		Redis:   config.RedisConfig{Enabled: false},
		Queue:   config.QueueConfig{BoletoQueue: "queue:boleto_generation"},
	}
	log := zap.NewNop()

	mongo, cleanupMongo := ProvideMongo(cfg, log)
	defer cleanupMongo()
	assert.Nil(t, mongo)

	rdb, cleanupRedis := ProvideRedis(cfg, log)
	defer cleanupRedis()
	assert.Nil(t, rdb)

	assert.Nil(t, ProvideFileStore(nil))
	assert.Nil(t, ProvideMediaHandler(nil, log))
	assert.Nil(t, ProvideRelay(realtime.NewHub(log), nil, log))

	_, isMemory := ProvideQueue(cfg, nil).(*queue.MemoryQueue)
	assert.True(t, isMemory)
}

func TestProvideRedis_Unreachable(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"}}

	rdb, cleanup := ProvideRedis(cfg, zap.NewNop())
	defer cleanup()
	assert.Nil(t, rdb)
}

func TestProvideChecks(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	checks := ProvideChecks(db, nil, nil)
	require.Len(t, checks, 1)

	mock.ExpectPing()
	deps, healthy := checks.Run(context.Background())
	assert.True(t, healthy)
	assert.Equal(t, "up", deps["database"])

	mock.ExpectPing().WillReturnError(assert.AnError)
	deps, healthy = checks.Run(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "down", deps["database"])
}

func TestProvideWorkers_RegistersBoletoJobs(t *testing.T) {
	cfg := &config.Config{Queue: config.QueueConfig{Workers: 1, PollTimeout: 1}}
	q := queue.NewMemoryQueue(1)
	pool := ProvideWorkers(q, cfg, boleto.NewBoletoService(nil, q, nil, zap.NewNop()), zap.NewNop())
	require.NotNil(t, pool)
	pool.Shutdown()
}
