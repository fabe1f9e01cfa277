//go:build darwin

package sound

// fileCommands plays sound files on macOS using afplay, which handles CAF natively
func fileCommands(path string) []command {
	return []command{
		{"afplay", []string{path}},
	}
}

func defaultCommands() []command {
	return []command{
		{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}},
		{"afplay", []string{"/System/Library/Sounds/Tink.aiff"}},
	}
}
