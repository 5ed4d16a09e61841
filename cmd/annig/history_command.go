package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"annig/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect generated album records",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generated album records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No album records generated yet")
				return nil
			}

			const stampLayout = "2006-01-02 15:04"
			rows := make([][]string, 0, len(records))
			for _, record := range records {
				updated := "unknown"
				if !record.UpdatedAt.IsZero() {
					updated = record.UpdatedAt.Local().Format(stampLayout)
				}
				rows = append(rows, []string{record.Catalog, record.Title, record.Artist, record.AlbumID, updated})
			}
			fmt.Fprintln(out, renderTable([]column{
				{header: "Catalog"},
				{header: "Title", maxWidth: 40},
				{header: "Artist", maxWidth: 40},
				{header: "Album ID"},
				{header: "Updated", align: alignRight},
			}, rows))
			return nil
		},
	}
}
