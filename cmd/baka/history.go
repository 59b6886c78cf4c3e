package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Pablo-Gaspar/baka/internal/history"
)

const defaultHistoryLimit = 20

// NewHistoryCommand creates the history command definition
func NewHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:        "history",
		Usage:       "Show recent interactions",
		Description: "Prints the most recent chat interactions, newest first.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of interactions to show",
				Value:   defaultHistoryLimit,
			},
		},
		Action: historyCommand,
	}
}

func historyCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit := cmd.Int("limit")
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := store.Recent(limit)
	if err != nil {
		return err
	}

	w := commandWriter(cmd)
	if len(records) == 0 {
		fmt.Fprintln(w, "No interactions recorded")
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if !rec.Success {
			status = "failed"
		}
		fmt.Fprintf(w, "[%s] (%s) %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"), status, rec.UserInput)
		fmt.Fprintf(w, "    %s\n", rec.AgentAction)
	}
	return nil
}
