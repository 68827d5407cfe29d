package randutil

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewStreamsDiffer(t *testing.T) {
	t.Parallel()

	a := NewStream(42, 1)
	b := NewStream(42, 2)

	same := 0
	for range 64 {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 64)
}

func TestStreamZeroMatchesNew(t *testing.T) {
	t.Parallel()

	a := New(7)
	b := NewStream(7, 0)
	assert.Equal(t, a.Uint64(), b.Uint64())
}

func TestSeedUsesClock(t *testing.T) {
	clock := quartz.NewMock(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	clock.Set(now)

	assert.Equal(t, now.UnixNano(), Seed(clock))
}
