package optim

import (
	"regexp"
)

// noDecay matches parameters that conventionally train without weight decay.
var noDecay = regexp.MustCompile(`(.*bias|.*layer_norm.*|.*batch_norm.*)`)

// New builds the Adam optimizer and one-cycle schedule for a training run.
// Bias and normalization parameters are excluded from weight decay; every
// other parameter uses weightDecay.
func New(lr, weightDecay float64, totalSteps int, model Model) (*Adam, *OneCycleLR, error) {
	var decay, excluded ParamGroup
	decay.WeightDecay = weightDecay
	for _, p := range model.NamedParameters() {
		if noDecay.MatchString(p.Name) {
			excluded.Params = append(excluded.Params, p)
		} else {
			decay.Params = append(decay.Params, p)
		}
	}

	optimizer, err := NewAdam([]ParamGroup{decay, excluded}, lr)
	if err != nil {
		return nil, nil, err
	}
	scheduler, err := NewOneCycleLR(optimizer, lr*OneCycleDivFactor, totalSteps,
		OneCyclePctStart, OneCycleDivFactor, OneCycleFinalDivFactor)
	if err != nil {
		return nil, nil, err
	}
	return optimizer, scheduler, nil
}
