package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/catalyst/internal/cli"
)

func sessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List cached analysis sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}

			infos, err := store.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println(cli.FormatWarning("No cached sessions."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Cached Sessions"))
			for _, info := range infos {
				fmt.Printf("  %-6d %-24s %s  %d article(s)\n",
					info.ID, info.Company, formatAge(info.CreatedAt), info.ArticleCount)
			}
			return nil
		},
	}
}
