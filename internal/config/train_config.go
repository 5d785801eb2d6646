package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

const (
	DefaultSeed         = 42
	DefaultLearningRate = 3e-4
	DefaultTotalSteps   = 100
	DefaultClipValue    = 0.5
)

// TrainConfig carries the knobs shared by force-field training runs.
// Environment variables override command line flags.
type TrainConfig struct {
	Seed           uint64  `env:"SEED"`
	Rank           uint64  `env:"RANK"`
	DeviceID       int     `env:"DEVICE_ID"`
	LearningRate   float64 `env:"LEARNING_RATE"`
	WeightDecay    float64 `env:"WEIGHT_DECAY"`
	TotalSteps     int     `env:"TOTAL_STEPS"`
	ClipValue      float64 `env:"CLIP_VALUE"`
	ReportEndpoint string  `env:"REPORT_ENDPOINT"`
	RunName        string  `env:"RUN_NAME"`
	LogLevel       string
}

func NewTrainConfig() (*TrainConfig, error) {
	var config TrainConfig
	config.LogLevel = "info"
	err := config.parseFlags()
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (config *TrainConfig) parseFlags() error {
	flag.Uint64Var(&config.Seed, "s", DefaultSeed, "Base random seed")
	flag.Uint64Var(&config.Rank, "rank", 0, "Process rank, used as a seed offset")
	flag.IntVar(&config.DeviceID, "d", 0, "CUDA device id")
	flag.Float64Var(&config.LearningRate, "lr", DefaultLearningRate, "Initial learning rate")
	flag.Float64Var(&config.WeightDecay, "wd", 0, "Weight decay for parameters outside the no-decay set")
	flag.IntVar(&config.TotalSteps, "t", DefaultTotalSteps, "Total optimizer steps")
	flag.Float64Var(&config.ClipValue, "c", DefaultClipValue, "Gradient clip value, 0 disables clipping")
	flag.StringVar(&config.ReportEndpoint, "e", "", "Experiment tracking endpoint, empty disables reporting")
	flag.StringVar(&config.RunName, "n", "default", "Experiment run name")
	flag.StringVar(&config.LogLevel, "l", "info", "Log level")
	flag.Parse()

	return env.Parse(config)
}
