package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmorar/banksim/internal/engine"
	"github.com/rmorar/banksim/internal/errhandler"
	"github.com/rmorar/banksim/internal/scenario"
	"github.com/rmorar/banksim/internal/store"
	"github.com/rmorar/banksim/internal/utils"
)

// Command-line flags
var (
	runOutput      string
	runInteractive bool
	runNoJournal   bool
)

func NewRunCmd(migrations fs.FS) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <scenario.json>",
		Short: "Replay a scenario file through the transaction engine.",
		Long: `Run loads a scenario file, replays its command stream and prints the
collected output records as JSON.

With --interactive, split payments still awaiting answers at the end of the
stream are resolved at the terminal. Unless --no-journal is set, the run's
output records are appended to the SQLite journal for later audit.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runScenario(migrations),
	}

	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write output records to a file instead of stdout")
	runCmd.Flags().BoolVarP(&runInteractive, "interactive", "i", false, "resolve unanswered split payments at the terminal")
	runCmd.Flags().BoolVar(&runNoJournal, "no-journal", false, "skip journaling this run")

	return runCmd
}

func runScenario(migrations fs.FS) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path := args[0]

		s, err := scenario.Load(path)
		if err != nil {
			return err
		}

		runner := scenario.NewRunner(s, cfg.Defaults.BusinessLimit)
		records := runner.Run(s)

		if runInteractive {
			if err := resolvePendingSplits(runner); err != nil {
				errhandler.HandleError(err)
			}
			records = runner.Out().Records()
		}

		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output records: %w", err)
		}

		if runOutput != "" {
			if err := os.WriteFile(runOutput, data, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			pterm.Success.Printf("Wrote %d output records to %s\n", len(records), runOutput)
		} else {
			fmt.Println(string(data))
		}

		if runNoJournal || cfg.Journal.Disabled {
			return nil
		}
		runID, err := journalRun(migrations, path, records)
		if err != nil {
			return fmt.Errorf("failed to journal run: %w", err)
		}
		pterm.Success.Printf("Journaled run %s\n", runID)

		return nil
	}
}

// resolvePendingSplits walks every user's unanswered split payments and asks
// for their decision at the terminal.
func resolvePendingSplits(runner *scenario.Runner) error {
	for _, user := range runner.World().Users() {
		for len(user.PendingSplits) > 0 {
			split, ok := user.PendingSplits[0].(*engine.SplitPayment)
			if !ok {
				break
			}

			var accept bool
			err := huh.NewConfirm().
				Title(fmt.Sprintf("%s: approve the %s split payment of %s from timestamp %d?",
					user.Email, split.SplitKind(),
					utils.FormatAmount(split.Total()), split.Timestamp())).
				Affirmative("Approve").
				Negative("Reject").
				Value(&accept).
				Run()
			if err != nil {
				return err
			}

			if accept {
				split.Approve(user.Email)
			} else {
				split.Reject(user.Email)
			}
		}
	}
	return nil
}

func journalRun(migrations fs.FS, scenarioPath string, records []engine.OutputRecord) (string, error) {
	dbPath, err := journalPath()
	if err != nil {
		return "", err
	}

	js, err := store.NewStore(dbPath, migrations)
	if err != nil {
		return "", err
	}
	defer js.Close()

	runID := uuid.NewString()
	if err := js.CreateRun(runID, scenarioPath, time.Now().Unix()); err != nil {
		return "", err
	}

	events := make([]store.Event, 0, len(records))
	for i, rec := range records {
		payload := ""
		if rec.Payload != nil {
			data, err := json.Marshal(rec.Payload)
			if err != nil {
				return "", fmt.Errorf("failed to encode payload: %w", err)
			}
			payload = string(data)
		}
		events = append(events, store.Event{
			Seq:       i,
			Command:   rec.Command,
			Timestamp: rec.Timestamp,
			Error:     rec.Error,
			Payload:   payload,
		})
	}

	if err := js.AppendEvents(runID, events); err != nil {
		return "", err
	}
	return runID, nil
}
