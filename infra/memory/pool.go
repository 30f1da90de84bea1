package memory

import "sync"

// Pool is a typed object pool. The order service recycles transient
// inbound orders through it: the book copies whatever it rests, so an
// order object is free for reuse as soon as its Place call returns.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
