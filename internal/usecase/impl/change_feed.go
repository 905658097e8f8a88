package impl

import (
	"context"
	"sync"

	"guardian/internal/usecase"
)

// changeFeed calls every subscriber synchronously, in subscription order.
type changeFeed struct {
	mu          sync.RWMutex
	nextID      uint64
	subscribers map[uint64]func(ctx context.Context)
	order       []uint64
}

// NewChangeFeed creates the feed shared by the parental services and the monitor
func NewChangeFeed() usecase.ChangeFeed {
	return &changeFeed{subscribers: make(map[uint64]func(ctx context.Context))}
}

func (f *changeFeed) Publish(ctx context.Context) {
	f.mu.RLock()
	fns := make([]func(ctx context.Context), 0, len(f.order))
	for _, id := range f.order {
		fns = append(fns, f.subscribers[id])
	}
	f.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

func (f *changeFeed) Subscribe(fn func(ctx context.Context)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subscribers[id] = fn
	f.order = append(f.order, id)

	var once sync.Once

	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()

			delete(f.subscribers, id)
			for i, existing := range f.order {
				if existing == id {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
		})
	}
}
