package glm

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("no panic, want %v", target)
		}

		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic=%v, want %v", r, target)
		}
	}()

	fn()
}
