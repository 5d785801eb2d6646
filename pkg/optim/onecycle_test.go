package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchedule(t *testing.T, maxLR float64, totalSteps int) (*Adam, *OneCycleLR) {
	t.Helper()
	p := &Parameter{Name: "w", Value: []float64{0}, RequiresGrad: true}
	opt, err := NewAdam([]ParamGroup{{Params: []*Parameter{p}}}, 1.0)
	require.NoError(t, err)
	sched, err := NewOneCycleLR(opt, maxLR, totalSteps, OneCyclePctStart, OneCycleDivFactor, OneCycleFinalDivFactor)
	require.NoError(t, err)
	return opt, sched
}

func TestNewOneCycleLR_Validation(t *testing.T) {
	opt, err := NewAdam(nil, 1.0)
	require.NoError(t, err)

	_, err = NewOneCycleLR(opt, 1.0, 0, OneCyclePctStart, 10, 10)
	assert.Error(t, err)
	_, err = NewOneCycleLR(opt, 1.0, 100, 1.5, 10, 10)
	assert.Error(t, err)
	_, err = NewOneCycleLR(opt, 1.0, 100, OneCyclePctStart, 0, 10)
	assert.Error(t, err)
}

func TestOneCycleLR_Endpoints(t *testing.T) {
	opt, sched := newTestSchedule(t, 1.0, 100)

	// starts at maxLR/divFactor, which the constructor already applied
	assert.InDelta(t, 0.1, sched.At(0), 1e-12)
	assert.InDelta(t, 0.1, opt.LR(), 1e-12)

	// ends a finalDivFactor below the initial rate
	assert.InDelta(t, 0.01, sched.At(99), 1e-12)
	assert.InDelta(t, 0.01, sched.At(1000), 1e-12)
}

func TestOneCycleLR_WarmupThenDecay(t *testing.T) {
	_, sched := newTestSchedule(t, 1.0, 1000)

	pctStart := float64(OneCyclePctStart)
	warmupSteps := int(pctStart * 999) // 49
	for step := 1; step <= warmupSteps; step++ {
		assert.Greater(t, sched.At(step), sched.At(step-1), "expected warmup at step %d", step)
	}
	assert.InDelta(t, 1.0, sched.At(warmupSteps+1), 1e-3)
	for step := warmupSteps + 2; step < 1000; step++ {
		assert.Less(t, sched.At(step), sched.At(step-1), "expected decay at step %d", step)
	}
}

func TestOneCycleLR_StepDrivesOptimizer(t *testing.T) {
	opt, sched := newTestSchedule(t, 1.0, 100)

	for i := 1; i <= 10; i++ {
		sched.Step()
		assert.Equal(t, sched.At(i), opt.LR())
		assert.Equal(t, sched.LastLR(), opt.LR())
	}
}

func TestOneCycleLR_ZeroWarmupFraction(t *testing.T) {
	opt, err := NewAdam(nil, 1.0)
	require.NoError(t, err)
	sched, err := NewOneCycleLR(opt, 1.0, 100, 0, 10, 10)
	require.NoError(t, err)

	// with no warmup the schedule starts at the peak and only decays
	assert.InDelta(t, 1.0, sched.At(0), 1e-12)
	assert.InDelta(t, 0.01, sched.At(99), 1e-12)
}
