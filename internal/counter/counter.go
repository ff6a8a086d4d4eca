package counter

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a process-wide request counter. It only ever increases and is
// reset when the process restarts.
type Counter struct {
	v atomic.Int64
}

// New returns a Counter holding start.
func New(start int64) *Counter {
	c := &Counter{}
	c.v.Store(start)
	return c
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int64 {
	return c.v.Add(1)
}

// Value returns the current value without changing it.
func (c *Counter) Value() int64 {
	return c.v.Load()
}

// Register exposes the current value as the request_counter_value gauge.
func (c *Counter) Register(reg prometheus.Registerer) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "request_counter_value",
			Help: "Current value of the in-memory request counter.",
		},
		func() float64 { return float64(c.Value()) },
	))
}
