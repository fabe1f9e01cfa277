//go:build linux

package sound

// fileCommands plays sound files on Linux using paplay (PulseAudio, CAF via
// libsndfile) or ffplay
func fileCommands(path string) []command {
	return []command{
		{"paplay", []string{path}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
	}
}

func defaultCommands() []command {
	return []command{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
	}
}
