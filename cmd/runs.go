package cmd

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmorar/banksim/internal/store"
)

// Command-line flags
var (
	runsLimit  int
	runsShowID string
)

func NewRunsCmd(migrations fs.FS) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:          "runs",
		Short:        "List journaled runs or show one run's output records.",
		SilenceUsage: true,
		RunE:         listRuns(migrations),
	}

	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum number of runs to list")
	runsCmd.Flags().StringVar(&runsShowID, "show", "", "print the output records of the given run ID")

	return runsCmd
}

func listRuns(migrations fs.FS) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dbPath, err := journalPath()
		if err != nil {
			return err
		}

		js, err := store.NewStore(dbPath, migrations)
		if err != nil {
			return err
		}
		defer js.Close()

		if runsShowID != "" {
			return showRun(js, runsShowID)
		}

		runs, err := js.ListRuns(runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			pterm.Warning.Println("No journaled runs")
			return nil
		}

		rows := pterm.TableData{{"RUN ID", "SCENARIO", "STARTED"}}
		for _, r := range runs {
			rows = append(rows, []string{
				r.ID, r.Scenario,
				time.Unix(r.StartedAt, 0).Format(time.RFC3339),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	}
}

func showRun(js store.Repository, runID string) error {
	run, err := js.GetRun(runID)
	if err != nil {
		return err
	}
	events, err := js.GetEventsByRun(runID)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Run %s (%s), %d output records\n", run.ID, run.Scenario, len(events))
	for _, ev := range events {
		if ev.Error != "" {
			pterm.Error.Printf("%6d  %-24s %s\n", ev.Timestamp, ev.Command, ev.Error)
			continue
		}
		line := fmt.Sprintf("%6d  %-24s", ev.Timestamp, ev.Command)
		if ev.Payload != "" {
			line += " " + ev.Payload
		}
		pterm.Println(line)
	}
	return nil
}
