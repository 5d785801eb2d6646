//go:build cuda

package device

import (
	"fmt"

	"go.uber.org/zap"
	"gorgonia.org/cu"

	"github.com/piotroxp/orb-models/internal/logger"
)

func cudaDeviceCount() int {
	n, err := cu.NumDevices()
	if err != nil {
		logger.Log.Info("cuda unavailable", zap.Error(err))
		return 0
	}
	return n
}

func logCUDAInfo(id int) {
	dev := cu.Device(id)
	name, err := dev.Name()
	if err != nil {
		logger.Log.Info("using cuda device", zap.Int("id", id), zap.Error(err))
		return
	}
	total, _ := dev.TotalMem()
	major, _ := dev.Attribute(cu.ComputeCapabilityMajor)
	minor, _ := dev.Attribute(cu.ComputeCapabilityMinor)
	logger.Log.Info("using cuda device",
		zap.Int("id", id),
		zap.String("name", name),
		zap.Int64("total_memory", total),
		zap.String("compute", fmt.Sprintf("%d.%d", major, minor)))
}
