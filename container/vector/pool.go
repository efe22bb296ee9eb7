package vector

import "sync"

// Pool provides sync.Pool-based Vector reuse to cut allocations in loops
// that repeatedly build short-lived sequences.
type Pool[T any] struct {
	cfg  PoolConfig
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any](opts ...PoolOption) *Pool[T] {
	p := &Pool[T]{cfg: ApplyPoolOptions(opts...)}
	p.pool.New = func() any {
		return FromHint[T](Reserve(p.cfg.InitialCapacity))
	}
	return p
}

// Config returns the pool's effective configuration.
func (p *Pool[T]) Config() PoolConfig {
	return p.cfg
}

// Get returns an empty Vector with at least InitialCapacity slots.
// Callers should return it via Put when done.
func (p *Pool[T]) Get() *Vector[T] {
	v := p.pool.Get().(*Vector[T])
	v.Clear()
	v.Reserve(p.cfg.InitialCapacity)
	return v
}

// Put returns v to the pool. Vectors larger than MaxRetainedCapacity have
// their block freed and are not kept. The caller must not use v afterwards.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	if p.cfg.MaxRetainedCapacity > 0 && v.Cap() > p.cfg.MaxRetainedCapacity {
		v.storage.Free()
		v.size, v.capacity = 0, 0
		return
	}
	clear(v.Data())
	v.Clear()
	p.pool.Put(v)
}
