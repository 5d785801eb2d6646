package optim

import (
	"fmt"
	"math"
)

const (
	// Peak learning rate is OneCycleDivFactor times the initial one, and the
	// final rate is OneCycleFinalDivFactor times smaller than the initial.
	OneCycleDivFactor      = 10.0
	OneCycleFinalDivFactor = 10.0
	OneCyclePctStart       = 0.05
)

// OneCycleLR anneals the optimizer learning rate from maxLR/divFactor up to
// maxLR over the warmup fraction of training and back down to
// maxLR/divFactor/finalDivFactor, with cosine ramps on both sides.
type OneCycleLR struct {
	opt        *Adam
	maxLR      float64
	initialLR  float64
	minLR      float64
	totalSteps int
	pctStart   float64
	stepNum    int
}

func NewOneCycleLR(opt *Adam, maxLR float64, totalSteps int, pctStart, divFactor, finalDivFactor float64) (*OneCycleLR, error) {
	if totalSteps <= 0 {
		return nil, fmt.Errorf("total steps must be positive, got %d", totalSteps)
	}
	if pctStart < 0 || pctStart > 1 {
		return nil, fmt.Errorf("pct start must be in [0, 1], got %g", pctStart)
	}
	if divFactor <= 0 || finalDivFactor <= 0 {
		return nil, fmt.Errorf("div factors must be positive, got %g and %g", divFactor, finalDivFactor)
	}

	initial := maxLR / divFactor
	s := &OneCycleLR{
		opt:        opt,
		maxLR:      maxLR,
		initialLR:  initial,
		minLR:      initial / finalDivFactor,
		totalSteps: totalSteps,
		pctStart:   pctStart,
	}
	opt.SetLR(s.At(0))
	return s, nil
}

// At returns the learning rate scheduled for the given optimizer step.
func (s *OneCycleLR) At(step int) float64 {
	last := float64(s.totalSteps - 1)
	if step >= s.totalSteps {
		return s.minLR
	}
	warmup := s.pctStart * last
	if warmup > 0 && float64(step) <= warmup {
		return annealCos(s.initialLR, s.maxLR, float64(step)/warmup)
	}
	if last-warmup <= 0 {
		return s.maxLR
	}
	return annealCos(s.maxLR, s.minLR, (float64(step)-warmup)/(last-warmup))
}

// Step advances the schedule by one optimizer step and updates the optimizer
// learning rate.
func (s *OneCycleLR) Step() {
	s.stepNum++
	s.opt.SetLR(s.At(s.stepNum))
}

// LastLR returns the learning rate for the most recent step.
func (s *OneCycleLR) LastLR() float64 {
	return s.At(s.stepNum)
}

// annealCos interpolates from start to end as pct runs from 0 to 1 along a
// half cosine.
func annealCos(start, end, pct float64) float64 {
	return end + (start-end)/2*(math.Cos(math.Pi*pct)+1)
}
