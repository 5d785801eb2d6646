package optim

import (
	"fmt"
	"math"
)

const (
	DefaultBeta1 = 0.9
	DefaultBeta2 = 0.999
	DefaultEps   = 1e-8
)

// ParamGroup is a set of parameters sharing optimizer settings.
type ParamGroup struct {
	Params      []*Parameter
	WeightDecay float64
}

// Adam implements the Adam optimizer with bias-corrected moment estimates
// and per-group L2 weight decay folded into the gradient.
type Adam struct {
	Groups []ParamGroup

	lr      float64
	beta1   float64
	beta2   float64
	eps     float64
	step    int
	moment1 map[*Parameter][]float64
	moment2 map[*Parameter][]float64
}

func NewAdam(groups []ParamGroup, lr float64) (*Adam, error) {
	if lr <= 0 {
		return nil, fmt.Errorf("learning rate must be positive, got %g", lr)
	}
	return &Adam{
		Groups:  groups,
		lr:      lr,
		beta1:   DefaultBeta1,
		beta2:   DefaultBeta2,
		eps:     DefaultEps,
		moment1: make(map[*Parameter][]float64),
		moment2: make(map[*Parameter][]float64),
	}, nil
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR replaces the learning rate; schedulers call this every step.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// ZeroGrad clears the gradient of every parameter.
func (a *Adam) ZeroGrad() {
	for _, group := range a.Groups {
		for _, p := range group.Params {
			p.Grad = nil
		}
	}
}

// Step applies one Adam update to every trainable parameter with a gradient.
func (a *Adam) Step() {
	a.step++
	bc1 := 1 - math.Pow(a.beta1, float64(a.step))
	bc2 := 1 - math.Pow(a.beta2, float64(a.step))

	for _, group := range a.Groups {
		for _, p := range group.Params {
			if !p.RequiresGrad || p.Grad == nil {
				continue
			}
			m1 := a.moment(a.moment1, p)
			m2 := a.moment(a.moment2, p)
			for i := range p.Value {
				g := p.Grad[i]
				if group.WeightDecay != 0 {
					g += group.WeightDecay * p.Value[i]
				}
				m1[i] = a.beta1*m1[i] + (1-a.beta1)*g
				m2[i] = a.beta2*m2[i] + (1-a.beta2)*g*g
				mHat := m1[i] / bc1
				vHat := m2[i] / bc2
				p.Value[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
			}
		}
	}
}

func (a *Adam) moment(store map[*Parameter][]float64, p *Parameter) []float64 {
	m, ok := store[p]
	if !ok {
		m = make([]float64, len(p.Value))
		store[p] = m
	}
	return m
}
