package arrayptr

import "errors"

// ErrEmpty is the panic value cause when an empty ArrayPtr is dereferenced.
var ErrEmpty = errors.New("arrayptr: empty")

// noCopy makes go vet flag value copies of structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ArrayPtr exclusively owns one backing block of T.
// The zero value is an empty ArrayPtr ready for use.
type ArrayPtr[T any] struct {
	_     noCopy
	block []T
}

// New takes ownership of raw without allocating. A nil or zero-length raw
// yields an empty ArrayPtr.
func New[T any](raw []T) *ArrayPtr[T] {
	p := &ArrayPtr[T]{}
	p.Reset(raw)
	return p
}

// Make allocates a zeroed block of n slots and wraps it.
// Non-positive n yields an empty ArrayPtr.
func Make[T any](n int) *ArrayPtr[T] {
	if n <= 0 {
		return &ArrayPtr[T]{}
	}
	return &ArrayPtr[T]{block: make([]T, n)}
}

// Reset frees the current block and takes ownership of raw.
// Resetting to the block already owned is a no-op.
func (p *ArrayPtr[T]) Reset(raw []T) {
	if len(raw) == 0 {
		p.Free()
		return
	}
	raw = raw[:len(raw):len(raw)]
	if sameBlock(p.block, raw) {
		return
	}
	p.Free()
	p.block = raw
}

// MoveFrom frees the current block and takes src's block, leaving src
// empty. Moving from p itself, or from an ArrayPtr holding the same block,
// changes nothing.
func (p *ArrayPtr[T]) MoveFrom(src *ArrayPtr[T]) {
	if src == nil || src == p || sameBlock(p.block, src.block) {
		return
	}
	p.Free()
	p.block = src.Release()
}

// Free drops the owned block. Its slots are zeroed first so values they
// reference become collectable. Calling Free on an empty ArrayPtr is a no-op.
func (p *ArrayPtr[T]) Free() {
	if p.block == nil {
		return
	}
	clear(p.block)
	p.block = nil
}

// Raw returns the owned block without transferring ownership.
// The view is invalid once p frees, releases or swaps the block.
func (p *ArrayPtr[T]) Raw() []T {
	return p.block
}

// Release hands the block to the caller and leaves p empty.
func (p *ArrayPtr[T]) Release() []T {
	b := p.block
	p.block = nil
	return b
}

// Swap exchanges blocks with other in O(1).
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.block, other.block = other.block, p.block
}

// Valid reports whether p owns a block.
func (p *ArrayPtr[T]) Valid() bool {
	return p.block != nil
}

// Len returns the number of slots in the owned block, 0 when empty.
func (p *ArrayPtr[T]) Len() int {
	return len(p.block)
}

// Deref returns a pointer to the first slot. It panics with ErrEmpty when p
// owns no block.
func (p *ArrayPtr[T]) Deref() *T {
	if p.block == nil {
		panic(ErrEmpty)
	}
	return &p.block[0]
}

// At returns a pointer to slot i. It panics with ErrEmpty when p owns no
// block; an index past the block panics with the runtime bounds error.
func (p *ArrayPtr[T]) At(i int) *T {
	if p.block == nil {
		panic(ErrEmpty)
	}
	return &p.block[i]
}

func sameBlock[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	return &a[:1][0] == &b[:1][0]
}
