// Package seed provides deterministic seeding for the pseudo-random
// generators used during training and data loading.
package seed

import (
	"math/rand/v2"
)

// splitmix64 round, used to spread correlated seeds apart before they become
// generator state.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// New returns the generator for a training process with the given base seed
// and rank. Equal (seed, rank) pairs always produce identical streams;
// distinct ranks on the same seed produce independent ones.
func New(seed, rank uint64) *rand.Rand {
	s := seed + rank
	return rand.New(rand.NewPCG(s, mix(s)))
}

// WorkerSeed derives the seed for a data-loader worker from the loader's
// base seed. Plain base+worker offsets leave worker streams correlated, so
// the pair is mixed first; augmentations are then not duplicated across
// workers.
func WorkerSeed(base uint64, worker int) uint64 {
	return mix(base + uint64(worker) + 1)
}

// NewWorker returns the generator a data-loader worker should use.
func NewWorker(base uint64, worker int) *rand.Rand {
	s := WorkerSeed(base, worker)
	return rand.New(rand.NewPCG(s, mix(s)))
}
