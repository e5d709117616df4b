package queue

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sidd-gupta05/getfly-project/internal/api/metrics"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes report events to a fixed set of workers using consistent
// hashing on the project id, guaranteeing per-project ordering of activity
// updates.
type Dispatcher struct {
	workers []chan ports.ReportEvent
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReportEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReportEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its project.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(ev ports.ReportEvent) {
	i := d.shardIndex(ev.ProjectID)
	d.workers[i] <- ev
	metrics.ReportQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a project id deterministically to a worker index.
func (d *Dispatcher) shardIndex(projectID int64) int {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(projectID))
	h := fnv.New32a()
	_, _ = h.Write(buf[:])
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReportEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			metrics.ReportQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, ev); err != nil {
				d.log.Error().Err(err).
					Int64("project_id", ev.ProjectID).
					Int("worker_id", id).
					Msg("report event processing failed")
			}
		}
	}
}
