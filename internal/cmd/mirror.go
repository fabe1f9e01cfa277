package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// MirrorCmd inspects the relationship between the primary and shared directories
type MirrorCmd struct {
	Log    MirrorLogCmd    `cmd:"log" help:"Show recorded mirror divergences"`
	Status MirrorStatusCmd `cmd:"status" help:"Compare the primary and shared sound directories" default:"1"`
}

// MirrorStatusCmd compares both directories
type MirrorStatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the status command
func (m *MirrorStatusCmd) Run(cli *CLI) error {
	report, err := cli.Container.MirrorService.Report(context.Background())
	if err != nil {
		return fmt.Errorf("failed to compare sound directories: %w", err)
	}

	if m.Format == "json" {
		return printJSON(map[string]any{
			"consistent":   report.Consistent(),
			"in_sync":      report.InSync,
			"primary_dir":  cli.Container.SoundPaths.PrimaryDir,
			"primary_only": report.PrimaryOnly,
			"shared_dir":   cli.Container.SoundPaths.SharedDir,
			"shared_only":  report.SharedOnly,
		})
	}

	fmt.Printf("Primary: %s\n", cli.Container.SoundPaths.PrimaryDir)
	fmt.Printf("Shared:  %s\n\n", cli.Container.SoundPaths.SharedDir)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSTATE")
	for _, name := range report.InSync {
		fmt.Fprintf(w, "%s\tin sync\n", name)
	}
	for _, name := range report.PrimaryOnly {
		fmt.Fprintf(w, "%s\tprimary only\n", name)
	}
	for _, name := range report.SharedOnly {
		fmt.Fprintf(w, "%s\tshared only\n", name)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if report.Consistent() {
		fmt.Println("\nDirectories are consistent.")
	} else {
		fmt.Println("\nDirectories differ; notifications may not find every custom sound.")
	}
	return nil
}

// MirrorLogCmd lists recorded divergences
type MirrorLogCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of events to show" default:"50"`
}

// Run executes the log command
func (m *MirrorLogCmd) Run(cli *CLI) error {
	events, err := cli.Container.MirrorService.Events(context.Background(), m.Limit)
	if err != nil {
		return fmt.Errorf("failed to read mirror log: %w", err)
	}

	if m.Format == "json" {
		return printJSON(events)
	}

	if len(events) == 0 {
		fmt.Println("No mirror divergences recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOP\tFILE\tERROR")
	for _, event := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			event.CreatedAt.Local().Format(time.DateTime),
			event.Op,
			event.FileName,
			event.Error)
	}
	return w.Flush()
}
