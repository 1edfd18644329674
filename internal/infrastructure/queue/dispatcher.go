// Package queue runs the background cleanup of replaced upload objects.
// Deleting an old avatar or profile image is not worth a request round-trip
// failure, so handlers enqueue the URL and workers delete it off-path.
package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
)

// CleanupDispatcher routes deletion tasks to a fixed set of workers using
// consistent hashing on the object URL, so repeated deletes of the same
// object stay ordered.
type CleanupDispatcher struct {
	workers []chan string
	store   ports.Storage
	log     zerolog.Logger
}

// NewCleanupDispatcher creates a dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewCleanupDispatcher(numWorkers int, store ports.Storage, log zerolog.Logger) *CleanupDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &CleanupDispatcher{
		workers: make([]chan string, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *CleanupDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules deletion of the object behind url. When the worker's
// buffer is full the task is dropped rather than blocking the request path;
// an orphaned file is acceptable, a stalled upload response is not.
func (d *CleanupDispatcher) Enqueue(url string) {
	if url == "" {
		return
	}
	select {
	case d.workers[d.shardIndex(url)] <- url:
	default:
		d.log.Warn().Str("url", url).Msg("cleanup queue full, dropping task")
	}
}

func (d *CleanupDispatcher) shardIndex(url string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(url))
	return int(h.Sum32()) % len(d.workers)
}

func (d *CleanupDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case url, ok := <-ch:
			if !ok {
				return
			}
			if err := d.store.Delete(ctx, url); err != nil {
				d.log.Error().Err(err).
					Str("url", url).
					Int("worker_id", id).
					Msg("upload cleanup failed")
			}
		}
	}
}
