// Package fetch simulates a slow remote call that completes in the background
// while the caller keeps running.
package fetch

import (
	"errors"
	"fmt"
	"time"
)

// ErrZeroDelay is returned when a fetch is requested with no delay.
var ErrZeroDelay = errors.New("Simulated API failure: Delay cannot be zero.")

// Payload is the data a successful fetch produces.
type Payload struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

// String renders p as an object literal: { id: 101, content: '...' }.
func (p Payload) String() string {
	return fmt.Sprintf("{ id: %d, content: '%s' }", p.ID, p.Content)
}

// DefaultPayload is returned by every successful fetch.
var DefaultPayload = Payload{
	ID:      101,
	Content: "This is the asynchronously fetched data from the server.",
}

// FetchWithDelay starts a fetch and returns immediately. The promise settles
// after delay has elapsed: with DefaultPayload when delay is positive, or
// with ErrZeroDelay when delay is zero.
func FetchWithDelay(delay time.Duration) *Promise[Payload] {
	p, resolve, reject := NewPromise[Payload]()
	time.AfterFunc(delay, func() {
		if delay == 0 {
			reject(ErrZeroDelay)
			return
		}
		resolve(DefaultPayload)
	})
	return p
}
