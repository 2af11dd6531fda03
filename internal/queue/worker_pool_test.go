package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"agilefinance/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) Push(ctx context.Context, job *Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockQueue) Pop(ctx context.Context, timeout time.Duration) (*Job, error) {
	args := m.Called(ctx, timeout)
	job, _ := args.Get(0).(*Job)
	return job, args.Error(1)
}

func testPoolConfig() config.QueueConfig {
	return config.QueueConfig{Workers: 2, PollTimeout: 1}
}

func TestWorkerPool_ProcessesJobs(t *testing.T) {
	q := NewMemoryQueue(10)
	pool := NewWorkerPool(q, testPoolConfig(), zap.NewNop())

	var (
		mu   sync.Mutex
		seen []uint64
		wg   sync.WaitGroup
	)
	wg.Add(5)
	pool.Register("boleto.generate", func(_ context.Context, job *Job) error {
		defer wg.Done()
		var p boletoPayload
		if err := job.Decode(&p); err != nil {
			return err
		}
		mu.Lock()
		seen = append(seen, p.BoletoID)
		mu.Unlock()
		return nil
	})
	pool.Start()
	defer pool.Shutdown()

	for i := uint64(1); i <= 5; i++ {
		_, err := Enqueue(context.Background(), q, "boleto.generate", boletoPayload{BoletoID: i})
		require.NoError(t, err)
	}

	waitGroup(t, &wg)
	mu.Lock()
	assert.ElementsMatch(t, []uint64{1, 2, 3, 4, 5}, seen)
	mu.Unlock()
}

func TestWorkerPool_RetriesUntilSuccess(t *testing.T) {
	q := NewMemoryQueue(10)
	pool := NewWorkerPool(q, testPoolConfig(), zap.NewNop())

	var calls int32
	done := make(chan int, 1)
	pool.Register("flaky", func(_ context.Context, job *Job) error {
		if atomic.AddInt32(&calls, 1) < 2 {
			return errors.New("gridfs unavailable")
		}
		done <- job.Attempts
		return nil
	})
	pool.Start()
	defer pool.Shutdown()

	_, err := Enqueue(context.Background(), q, "flaky", nil)
	require.NoError(t, err)

	select {
	case attempts := <-done:
		assert.Equal(t, 2, attempts)
	case <-time.After(3 * time.Second):
		t.Fatal("job was not retried")
	}
}

func TestWorkerPool_GivesUpAfterMaxAttempts(t *testing.T) {
	q := new(MockQueue)
	pool := NewWorkerPool(q, testPoolConfig(), zap.NewNop())

	var calls int32
	pool.Register("broken", func(context.Context, *Job) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	})

	job := &Job{ID: "j1", Type: "broken"}
	q.On("Push", mock.Anything, job).Return(nil).Twice()

	for i := 0; i < defaultMaxAttempts; i++ {
		pool.process(zap.NewNop(), job)
	}

	assert.Equal(t, int32(defaultMaxAttempts), atomic.LoadInt32(&calls))
	assert.Equal(t, defaultMaxAttempts, job.Attempts)
	q.AssertExpectations(t)
}

func TestWorkerPool_UnknownTypeDropped(t *testing.T) {
	q := new(MockQueue)
	pool := NewWorkerPool(q, testPoolConfig(), zap.NewNop())

	job := &Job{ID: "j2", Type: "nobody.listens"}
	pool.process(zap.NewNop(), job)

	assert.Zero(t, job.Attempts)
	q.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestWorkerPool_ShutdownStopsWorkers(t *testing.T) {
	q := NewMemoryQueue(1)
	pool := NewWorkerPool(q, config.QueueConfig{Workers: 3, PollTimeout: 30}, zap.NewNop())
	pool.Start()
	pool.Start()

	stopped := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown blocked on idle workers")
	}
}

func waitGroup(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for jobs")
	}
}
