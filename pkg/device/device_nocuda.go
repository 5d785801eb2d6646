//go:build !cuda

package device

// CUDA enumeration is compiled in with the "cuda" build tag; default builds
// see no GPU devices.
func cudaDeviceCount() int {
	return 0
}

func logCUDAInfo(int) {}
