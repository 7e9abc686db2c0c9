package cleanup

import (
	"errors"
	"testing"
)

func TestRunAll_LIFOAndClears(t *testing.T) {
	var order []int
	Register(func() error { order = append(order, 1); return nil })
	Register(nil)
	Register(func() error { order = append(order, 2); return nil })

	if err := RunAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("order = %v, want [2 1]", order)
	}
	if err := RunAll(); err != nil {
		t.Fatalf("second RunAll should be a no-op, got %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("hooks ran twice: %v", order)
	}
}

func TestRunAll_JoinsErrors(t *testing.T) {
	errA := errors.New("close log")
	errB := errors.New("flush")
	Register(func() error { return errA })
	Register(func() error { return errB })

	err := RunAll()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both errors, got %v", err)
	}
}
