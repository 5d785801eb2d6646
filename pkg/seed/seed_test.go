package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(n int, f func() uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = f()
	}
	return out
}

func TestNew_Deterministic(t *testing.T) {
	a := New(42, 0)
	b := New(42, 0)

	assert.Equal(t, drain(16, a.Uint64), drain(16, b.Uint64))
}

func TestNew_RankSeparatesStreams(t *testing.T) {
	rank0 := New(42, 0)
	rank1 := New(42, 1)

	assert.NotEqual(t, drain(16, rank0.Uint64), drain(16, rank1.Uint64))
}

func TestWorkerSeed(t *testing.T) {
	const base = 1234

	seen := make(map[uint64]struct{})
	for worker := 0; worker < 64; worker++ {
		s := WorkerSeed(base, worker)
		assert.NotEqual(t, uint64(base), s)
		_, dup := seen[s]
		assert.False(t, dup, "worker %d got a duplicated seed", worker)
		seen[s] = struct{}{}
	}

	assert.Equal(t, WorkerSeed(base, 3), WorkerSeed(base, 3))
}

func TestNewWorker_IndependentOfBaseStream(t *testing.T) {
	base := New(42, 0)
	worker := NewWorker(42, 0)

	assert.NotEqual(t, drain(16, base.Uint64), drain(16, worker.Uint64))

	again := NewWorker(42, 0)
	assert.Equal(t, drain(16, NewWorker(42, 0).Uint64), drain(16, again.Uint64))
}
