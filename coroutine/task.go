package coroutine

import (
	"iter"

	"github.com/pkg/errors"
)

// Task is a suspendable routine. It starts eagerly: NewTask runs the body until its first
// Suspend or until it returns. Resume continues it from the last suspension point.
//
// A Task is not safe for concurrent use; all calls must come from the same logical thread of
// control.
type Task struct {
	next  func() (struct{}, bool)
	stop  func()
	yield func(struct{}) bool

	running  bool
	released bool
	done     bool
	err      error
}

func NewTask(body func(*Task)) *Task {
	t := &Task{}
	seq := func(yield func(struct{}) bool) {
		t.yield = yield
		defer func() {
			if r := recover(); r != nil {
				t.err = errors.Errorf("task panicked: %v", r)
			}
		}()
		body(t)
	}
	t.next, t.stop = iter.Pull(seq)
	t.Resume()
	return t
}

// Suspend hands control back to whoever resumed the task. It returns false when the task was
// released while suspended; the body must then return without touching shared state.
func (t *Task) Suspend() bool {
	if t.released {
		return false
	}
	t.yield(struct{}{})
	return !t.released
}

// Resume runs the task until its next suspension or its end. Resuming a finished, released or
// already running task does nothing.
func (t *Task) Resume() {
	if t.done || t.running || t.released {
		return
	}
	t.running = true
	_, ok := t.next()
	t.running = false
	if !ok {
		t.done = true
	}
}

// Release abandons a task that has not finished. Releasing twice, or releasing a finished
// task, is a no-op.
func (t *Task) Release() {
	if t.done || t.released {
		return
	}
	t.released = true
	if t.running {
		// Released from inside its own body: the next Suspend returns false.
		return
	}
	t.stop()
	t.done = true
}

func (t *Task) Done() bool {
	return t.done
}

func (t *Task) Released() bool {
	return t.released
}

func (t *Task) Running() bool {
	return t.running
}

// Err returns the panic captured from the task body, with its stack.
func (t *Task) Err() error {
	return t.err
}
