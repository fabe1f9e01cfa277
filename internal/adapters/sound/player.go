package sound

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
)

// command is one candidate way of playing a sound on the current platform
type command struct {
	name string
	args []string
}

// Player implements ports.SoundPlayer using OS-native audio commands
type Player struct {
	run func(name string, args ...string) error
}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{run: runCommand}
}

// Play plays the file behind handle, trying each platform command in turn.
// Falls back to the terminal bell when no command succeeds.
func (p *Player) Play(handle domain.AudioHandle) error {
	if _, err := os.Stat(handle.Path); err != nil {
		return fmt.Errorf("sound file unavailable: %w", err)
	}

	logging.Logger.Debug("Playing sound file", "path", handle.Path)
	return p.tryCommands(fileCommands(handle.Path))
}

// PlaySound plays the platform's stock notification sound
func (p *Player) PlaySound() error {
	return p.tryCommands(defaultCommands())
}

func (p *Player) tryCommands(commands []command) error {
	for _, c := range commands {
		err := p.run(c.name, c.args...)
		if err == nil {
			return nil
		}
		logging.Logger.Debug("Sound command failed", "command", c.name, "error", err)
	}
	return terminalBell()
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
