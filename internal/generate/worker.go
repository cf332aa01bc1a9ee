package generate

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Worker drains the service's job queue with a fixed pool of goroutines.
// Each job gets its own deadline covering the whole pipeline, so one
// stalled completion call cannot hold a worker forever.
type Worker struct {
	service   *Service
	queue     <-chan job
	logger    zerolog.Logger
	timeout   time.Duration
	workers   int
	shutdownC chan struct{}
	wg        sync.WaitGroup
}

func NewWorker(service *Service, logger zerolog.Logger, workers int, timeout time.Duration) *Worker {
	if workers <= 0 {
		workers = 4
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Worker{
		service:   service,
		queue:     service.Queue(),
		logger:    logger.With().Str("component", "generate_worker").Logger(),
		timeout:   timeout,
		workers:   workers,
		shutdownC: make(chan struct{}),
	}
}

// Run starts the pool and returns immediately; the caller continues while
// the goroutines drain the queue. Stop shuts the pool down.
func (w *Worker) Run() {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.loop()
	}
}

func (w *Worker) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.shutdownC:
			w.logger.Info().Msg("generation worker stopping")
			return
		case j := <-w.queue:
			w.handle(j)
		}
	}
}

func (w *Worker) handle(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	w.service.process(ctx, j)
}

// Stop signals the pool to exit and blocks until every worker has finished
// its current job.
func (w *Worker) Stop() {
	close(w.shutdownC)
	w.wg.Wait()
}
