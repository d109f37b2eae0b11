package bench

// SetAllowedCPUs replaces the CPU mask lookup used by DefaultConfig and
// returns a func that restores it.
func SetAllowedCPUs(f func() ([]int, error)) (restore func()) {
	prev := allowedCPUs
	allowedCPUs = f
	return func() { allowedCPUs = prev }
}
