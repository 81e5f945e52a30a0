package coroutine

import (
	"iter"

	"github.com/pkg/errors"
)

// Generator is a lazy producer of values. Nothing runs until the first Next.
type Generator[T any] struct {
	next func() (T, bool)
	stop func()

	value T
	done  bool
	err   error
}

func NewGenerator[T any](seq iter.Seq[T]) *Generator[T] {
	g := &Generator[T]{}
	guarded := func(yield func(T) bool) {
		defer func() {
			if r := recover(); r != nil {
				g.err = errors.Errorf("generator panicked: %v", r)
			}
		}()
		seq(yield)
	}
	g.next, g.stop = iter.Pull(guarded)
	return g
}

// Next advances to the next value and reports whether there was one.
func (g *Generator[T]) Next() bool {
	if g.done {
		return false
	}
	v, ok := g.next()
	if !ok {
		var zero T
		g.value = zero
		g.done = true
		return false
	}
	g.value = v
	return true
}

// Value returns the current value without advancing.
func (g *Generator[T]) Value() T {
	return g.value
}

func (g *Generator[T]) Done() bool {
	return g.done
}

// Close releases the producer. It is safe to call more than once.
func (g *Generator[T]) Close() error {
	g.done = true
	g.stop()
	return nil
}

func (g *Generator[T]) Err() error {
	return g.err
}

// Cycle yields 0, 1, ..., n-1 and starts over, forever.
func Cycle(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if n <= 0 {
			return
		}
		for i := 0; ; i = (i + 1) % n {
			if !yield(i) {
				return
			}
		}
	}
}
