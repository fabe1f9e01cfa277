package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
)

// SoundsListCmd lists sounds by section
type SoundsListCmd struct {
	Durations bool   `help:"Read each file's header and show its duration"`
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// soundListEntry is one row of the list output
type soundListEntry struct {
	Duration string `json:"duration,omitempty"`
	FileName string `json:"file_name"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Path     string `json:"path"`
}

// Run executes the list command
func (s *SoundsListCmd) Run(cli *CLI) error {
	_, cancel, coordinator, err := startCoordinator(cli)
	if err != nil {
		return err
	}
	defer cancel()

	snapshot := latestSnapshot(coordinator)
	entries := make([]soundListEntry, 0)
	for _, asset := range snapshot.Assets() {
		entry := soundListEntry{
			FileName: asset.FileName,
			Kind:     string(asset.Kind),
			Name:     asset.Name,
			Path:     asset.Path,
		}
		if s.Durations {
			entry.Duration = s.duration(cli, asset)
		}
		entries = append(entries, entry)
	}

	if s.Format == "json" {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No sounds found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if s.Durations {
		fmt.Fprintln(w, "NAME\tKIND\tDURATION\tFILE")
	} else {
		fmt.Fprintln(w, "NAME\tKIND\tFILE")
	}
	for _, entry := range entries {
		if s.Durations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Name, entry.Kind, entry.Duration, entry.FileName)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, entry.Kind, entry.FileName)
		}
	}
	return w.Flush()
}

func (s *SoundsListCmd) duration(cli *CLI, asset domain.SoundAsset) string {
	d, err := cli.Container.Probe.Duration(asset.Audio)
	if err != nil {
		logging.Logger.Debug("Failed to read sound duration", "sound", asset.FileName, "error", err)
		return "?"
	}
	return d.Round(10 * time.Millisecond).String()
}
