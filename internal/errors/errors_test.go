package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "NO_USERS_AVAILABLE"}
	wrapped := Wrap(base, "seed call actions")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(New("no stack")))
	assert.Contains(t, StackTrace(Wrap(New("inner"), "outer")), "TestStackTrace")
}

func TestWrapf_KeepsTarget(t *testing.T) {
	base := &codedError{code: "TRANSACTION_FAILED"}
	wrapped := Wrapf(base, "failed to seed %s #%d", "user", 3)

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "failed to seed user #3: TRANSACTION_FAILED", wrapped.Error())
	assert.False(t, Is(Errorf("unrelated %d", 1), base))
}
