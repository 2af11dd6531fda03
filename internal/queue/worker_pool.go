package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"agilefinance/internal/config"

	"go.uber.org/zap"
)

const defaultMaxAttempts = 3

type Handler func(ctx context.Context, job *Job) error

// WorkerPool runs N goroutines that pop jobs and hand them to the handler
// registered for the job type. Failed jobs are pushed back until they have
// been attempted maxAttempts times.
type WorkerPool struct {
	queue       Queue
	handlers    map[string]Handler
	workers     int
	pollTimeout time.Duration
	maxAttempts int
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
	wg          sync.WaitGroup
	started     bool
	log         *zap.Logger
}

func NewWorkerPool(queue Queue, cfg config.QueueConfig, log *zap.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	poll := time.Duration(cfg.PollTimeout) * time.Second
	if poll <= 0 {
		poll = 5 * time.Second
	}

	return &WorkerPool{
		queue:       queue,
		handlers:    make(map[string]Handler),
		workers:     workers,
		pollTimeout: poll,
		maxAttempts: defaultMaxAttempts,
		ctx:         ctx,
		cancel:      cancel,
		log:         log,
	}
}

func (p *WorkerPool) Register(jobType string, h Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[jobType] = h
	p.log.Info("job handler registered", zap.String("type", jobType))
}

func (p *WorkerPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(i)
	}
	p.log.Info("worker pool started", zap.Int("workers", p.workers))
}

func (p *WorkerPool) work(id int) {
	defer p.wg.Done()
	log := p.log.With(zap.Int("worker", id))

	for {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		job, err := p.queue.Pop(p.ctx, p.pollTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || p.ctx.Err() != nil {
				return
			}
			log.Warn("queue pop failed", zap.Error(err))
			select {
			case <-time.After(time.Second):
			case <-p.ctx.Done():
				return
			}
			continue
		}
		if job == nil {
			continue
		}
		p.process(log, job)
	}
}

func (p *WorkerPool) process(log *zap.Logger, job *Job) {
	p.mu.RLock()
	handler, ok := p.handlers[job.Type]
	p.mu.RUnlock()

	log = log.With(zap.String("job_id", job.ID), zap.String("type", job.Type))
	if !ok {
		log.Warn("no handler for job, dropping")
		return
	}

	job.Attempts++
	err := handler(p.ctx, job)
	if err == nil {
		log.Debug("job done", zap.Int("attempt", job.Attempts))
		return
	}

	if job.Attempts >= p.maxAttempts {
		log.Error("job failed, giving up", zap.Int("attempts", job.Attempts), zap.Error(err))
		return
	}
	log.Warn("job failed, retrying", zap.Int("attempt", job.Attempts), zap.Error(err))
	if perr := p.queue.Push(context.Background(), job); perr != nil {
		log.Error("job requeue failed", zap.Error(perr))
	}
}

// Shutdown stops the workers and waits for in-flight jobs.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.log.Info("worker pool shutdown complete")
}
