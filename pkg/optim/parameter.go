// Package optim builds optimizers, learning-rate schedules and gradient
// hooks for force-field training.
package optim

// GradHook transforms a gradient before it is stored on a parameter. A hook
// may modify the slice in place and return it.
type GradHook func(grad []float64) []float64

// Parameter is a named flat tensor of trainable weights.
type Parameter struct {
	Name         string
	Value        []float64
	Grad         []float64
	RequiresGrad bool

	hooks  map[int]GradHook
	order  []int
	nextID int
}

// RegisterHook adds a gradient hook and returns a handle that removes it.
// Hooks run in registration order each time SetGrad is called.
func (p *Parameter) RegisterHook(h GradHook) *Handle {
	if p.hooks == nil {
		p.hooks = make(map[int]GradHook)
	}
	id := p.nextID
	p.nextID++
	p.hooks[id] = h
	p.order = append(p.order, id)
	return &Handle{param: p, id: id}
}

// SetGrad passes g through the registered hooks and stores the result as the
// parameter's gradient.
func (p *Parameter) SetGrad(g []float64) {
	for _, id := range p.order {
		h, ok := p.hooks[id]
		if !ok {
			continue
		}
		g = h(g)
	}
	p.Grad = g
}

// Handle detaches a single gradient hook from its parameter.
type Handle struct {
	param *Parameter
	id    int
}

// Remove detaches the hook. Removing twice is a no-op.
func (h *Handle) Remove() {
	delete(h.param.hooks, h.id)
}

// Model is anything exposing named trainable parameters.
type Model interface {
	NamedParameters() []*Parameter
}
