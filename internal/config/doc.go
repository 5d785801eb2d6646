// Package config provides configuration management for training runs,
// parsed from command-line flags and environment variables.
//
// train_config.go defines the `TrainConfig` struct, which holds the settings
// shared by force-field training runs: seeding (base seed and process rank),
// the compute device id, optimizer hyperparameters (learning rate, weight
// decay, total steps, gradient clip value), experiment reporting (endpoint
// and run name) and the log level. Flags are registered on the standard flag
// set and environment variables take precedence over flag values.
package config
