// Package device selects the compute device used for training.
package device

import (
	"strconv"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"

	"github.com/piotroxp/orb-models/internal/logger"
)

const (
	KindCPU  = "cpu"
	KindCUDA = "cuda"
)

// Device identifies where tensors and model parameters live.
type Device struct {
	Kind string
	ID   int
}

func (d Device) String() string {
	if d.Kind == KindCUDA {
		return d.Kind + ":" + strconv.Itoa(d.ID)
	}
	return d.Kind
}

// IsCUDA reports whether the device is a GPU.
func (d Device) IsCUDA() bool {
	return d.Kind == KindCUDA
}

// Init initializes the device used for a training run. When CUDA devices are
// present the one with the given id is selected, falling back to device 0
// when the id is out of range; otherwise training runs on the host CPU.
func Init(id int) Device {
	if id < 0 {
		id = 0
	}
	if n := cudaDeviceCount(); n > 0 {
		if id >= n {
			id = 0
		}
		logCUDAInfo(id)
		return Device{Kind: KindCUDA, ID: id}
	}
	logHostInfo()
	return Device{Kind: KindCPU}
}

func logHostInfo() {
	fields := []zap.Field{
		zap.String("cpu", cpuid.CPU.BrandName),
		zap.Int("physical_cores", cpuid.CPU.PhysicalCores),
		zap.Int("logical_cores", cpuid.CPU.LogicalCores),
		zap.Bool("avx2", cpuid.CPU.Supports(cpuid.AVX2)),
		zap.Bool("avx512", cpuid.CPU.Supports(cpuid.AVX512F)),
	}
	if counts, err := cpu.Counts(true); err == nil {
		fields = append(fields, zap.Int("sched_cpus", counts))
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		fields = append(fields,
			zap.Uint64("total_memory", vmStat.Total),
			zap.Uint64("available_memory", vmStat.Available))
	}
	logger.Log.Info("using cpu device", fields...)
}
