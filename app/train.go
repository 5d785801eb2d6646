// Package app wires the training-support pieces together for a run.
package app

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/piotroxp/orb-models/internal/config"
	"github.com/piotroxp/orb-models/internal/logger"
	"github.com/piotroxp/orb-models/internal/reporter"
	"github.com/piotroxp/orb-models/pkg/device"
	"github.com/piotroxp/orb-models/pkg/seed"
	"github.com/piotroxp/orb-models/pkg/tracker"
)

// TrainApp holds everything a training binary needs before it builds its
// model and loop: parsed config, seeded generator, selected device, metric
// tracker and an optional experiment reporter.
type TrainApp struct {
	Config   *config.TrainConfig
	RNG      *rand.Rand
	Device   device.Device
	Tracker  *tracker.ScalarMetricTracker
	Reporter *reporter.Reporter
}

// NewTrainApp parses configuration and initializes logging, seeding and the
// compute device.
func NewTrainApp() (*TrainApp, error) {
	trainConfig, err := config.NewTrainConfig()
	if err != nil {
		return nil, err
	}
	return newTrainApp(trainConfig)
}

func newTrainApp(trainConfig *config.TrainConfig) (*TrainApp, error) {
	if err := logger.Initialize(trainConfig.LogLevel); err != nil {
		return nil, err
	}

	app := &TrainApp{
		Config:  trainConfig,
		RNG:     seed.New(trainConfig.Seed, trainConfig.Rank),
		Device:  device.Init(trainConfig.DeviceID),
		Tracker: tracker.New(),
	}
	if trainConfig.ReportEndpoint != "" {
		app.Reporter = reporter.New(trainConfig.ReportEndpoint, trainConfig.RunName)
	}

	logger.Log.Info("training runtime ready",
		zap.Uint64("seed", trainConfig.Seed),
		zap.Uint64("rank", trainConfig.Rank),
		zap.String("device", app.Device.String()))
	return app, nil
}
