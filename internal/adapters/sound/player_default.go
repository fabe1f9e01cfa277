//go:build !darwin && !linux && !windows

package sound

// fileCommands has no candidates on unsupported platforms; the bell is used
func fileCommands(path string) []command {
	return nil
}

func defaultCommands() []command {
	return nil
}
