package fetch

import (
	"context"
	"sync"
)

// Promise holds a value that becomes available later, or an error.
// It settles exactly once and is safe for concurrent use.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// NewPromise returns an unsettled promise along with its resolve and reject functions.
// Only the first call to either function has any effect.
func NewPromise[T any]() (p *Promise[T], resolve func(T), reject func(error)) {
	p = &Promise[T]{done: make(chan struct{})}
	resolve = func(v T) {
		p.once.Do(func() {
			p.value = v
			close(p.done)
		})
	}
	reject = func(err error) {
		p.once.Do(func() {
			p.err = err
			close(p.done)
		})
	}
	return p, resolve, reject
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done.
// Cancelling ctx abandons the wait only; the underlying work keeps running.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Settle registers continuations for the outcome. Once the promise settles,
// onSuccess or onFailure runs (never both), followed by onComplete. Nil
// continuations are skipped. The returned channel is closed after
// onComplete has returned.
func (p *Promise[T]) Settle(onSuccess func(T), onFailure func(error), onComplete func()) <-chan struct{} {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		<-p.done
		if p.err != nil {
			if onFailure != nil {
				onFailure(p.err)
			}
		} else if onSuccess != nil {
			onSuccess(p.value)
		}
		if onComplete != nil {
			onComplete()
		}
	}()
	return finished
}
