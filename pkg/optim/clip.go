package optim

// GradientClipping registers a clamping hook on every trainable parameter of
// the model. Gradients are clipped as they are produced rather than after
// the whole backward pass, so exploding gradients are caught early. Returns
// the handles needed to remove the hooks again.
func GradientClipping(model Model, clipValue float64) []*Handle {
	var handles []*Handle
	for _, p := range model.NamedParameters() {
		if !p.RequiresGrad {
			continue
		}
		handles = append(handles, p.RegisterHook(clampHook(clipValue)))
	}
	return handles
}

func clampHook(clipValue float64) GradHook {
	return func(grad []float64) []float64 {
		if grad == nil {
			return grad
		}
		for i, g := range grad {
			switch {
			case g > clipValue:
				grad[i] = clipValue
			case g < -clipValue:
				grad[i] = -clipValue
			}
		}
		return grad
	}
}
