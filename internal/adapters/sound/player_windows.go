//go:build windows

package sound

// fileCommands plays sound files on Windows. CAF has no native decoder there,
// so ffplay is the only candidate.
func fileCommands(path string) []command {
	return []command{
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
	}
}

func defaultCommands() []command {
	return []command{
		{"powershell", []string{"-c", "[System.Media.SystemSounds]::Asterisk.Play()"}},
		{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
	}
}
