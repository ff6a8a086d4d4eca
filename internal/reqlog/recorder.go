// Package reqlog records incoming requests without holding up the response.
// Every Writer gets its own backlog and goroutine, so a slow writer only ever
// delays itself. Records are never dropped while the recorder is open;
// failures are reported, never returned to the caller.
package reqlog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"webbasics/internal/model"
)

var ErrClosed = errors.New("request recorder is closed")

// Writer persists a single request record.
type Writer interface {
	Write(ctx context.Context, rec model.RequestRecord) error
}

// ErrorFunc receives failures. w is the writer that failed, or nil when the
// record was refused because the recorder is closed. It runs on the failing
// writer's goroutine.
type ErrorFunc func(w Writer, rec model.RequestRecord, err error)

// Recorder fans request records out to its writers. Each writer sees the
// records in arrival order.
type Recorder struct {
	sinks        []*sink
	onError      ErrorFunc
	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithWriteTimeout bounds each individual write. Zero or less keeps the default.
func WithWriteTimeout(d time.Duration) Option {
	return func(r *Recorder) {
		if d > 0 {
			r.writeTimeout = d
		}
	}
}

// NewRecorder starts one background goroutine per writer. Close must be
// called to flush pending records and stop them.
func NewRecorder(onError ErrorFunc, writers []Writer, opts ...Option) *Recorder {
	r := &Recorder{
		onError:      onError,
		writeTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, w := range writers {
		s := &sink{
			w:    w,
			wake: make(chan struct{}, 1),
			done: make(chan struct{}),
		}
		r.sinks = append(r.sinks, s)
		go r.run(s)
	}
	return r
}

// Record hands rec to every writer and returns immediately. It never blocks
// on a writer. After Close the record is refused and reported as ErrClosed.
func (r *Recorder) Record(rec model.RequestRecord) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.report(nil, rec, ErrClosed)
		return
	}
	for _, s := range r.sinks {
		s.push(rec)
	}
}

// Pending returns how many records are queued for a writer that has not yet
// picked them up, summed over all writers.
func (r *Recorder) Pending() int {
	n := 0
	for _, s := range r.sinks {
		n += s.size()
	}
	return n
}

// Register exposes Pending as the request_log_pending gauge.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "request_log_pending",
			Help: "Request records queued for a writer and not yet picked up.",
		},
		func() float64 { return float64(r.Pending()) },
	))
}

// Close stops accepting records and waits until every writer has drained its
// backlog or ctx ends.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		for _, s := range r.sinks {
			s.close()
		}
	}
	r.mu.Unlock()

	for _, s := range r.sinks {
		select {
		case <-s.done:
		case <-ctx.Done():
			return fmt.Errorf("flush request records: %w", ctx.Err())
		}
	}
	return nil
}

func (r *Recorder) run(s *sink) {
	defer close(s.done)
	for {
		batch, closed := s.take()
		if len(batch) == 0 {
			if closed {
				return
			}
			<-s.wake
			continue
		}
		for _, rec := range batch {
			ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
			if err := s.w.Write(ctx, rec); err != nil {
				r.report(s.w, rec, err)
			}
			cancel()
		}
	}
}

func (r *Recorder) report(w Writer, rec model.RequestRecord, err error) {
	if r.onError != nil {
		r.onError(w, rec, err)
	}
}

// sink is one writer's unbounded backlog.
type sink struct {
	w    Writer
	wake chan struct{}
	done chan struct{}

	mu      sync.Mutex
	pending []model.RequestRecord
	closed  bool
}

func (s *sink) push(rec model.RequestRecord) {
	s.mu.Lock()
	s.pending = append(s.pending, rec)
	s.mu.Unlock()
	s.signal()
}

func (s *sink) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.signal()
}

func (s *sink) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *sink) take() ([]model.RequestRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.pending
	s.pending = nil
	return batch, s.closed
}

func (s *sink) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
