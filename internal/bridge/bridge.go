// Package bridge moves work off the UI thread and results back onto it.
// The host client permits display and command side effects only on its own
// event loop, while network calls must never block it. Loop models that
// contract: background workers are plain goroutines, and callbacks posted
// to the loop run serialized on the single goroutine driving Run.
package bridge

import "sync"

// Loop is a serialized callback queue standing in for the host's UI
// thread. It performs no translation logic.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Run executes posted callbacks one at a time until Close. The goroutine
// calling Run owns all host-state access.
func (l *Loop) Run() {
	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-l.done:
			// Drain callbacks already queued before the close.
			for {
				select {
				case fn := <-l.tasks:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Post schedules fn to run later on the loop. Posting after Close drops
// the callback silently; delivery to a closed loop has nowhere to go.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.done:
	case l.tasks <- fn:
	}
}

// Go runs work on a background goroutine. One worker is spawned per
// translatable message; workers hand owned values back via Post and never
// touch host state directly.
func (l *Loop) Go(work func()) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		work()
	}()
}

// Close stops Run after the already-queued callbacks execute.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// WaitWorkers blocks until all background workers started with Go have
// returned. Intended for orderly shutdown and tests.
func (l *Loop) WaitWorkers() {
	l.wg.Wait()
}
