package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verdantlabs/catalyst/internal/cli"
	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/esg"
)

func esgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "esg <ticker>",
		Short: "Fetch ESG scores for a stock ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []esg.Option
			if base := viper.GetString("esg.base_url"); base != "" {
				opts = append(opts, esg.WithBaseURL(base))
			}

			client := esg.NewClient(opts...)
			scores, err := client.Fetch(cmd.Context(), args[0])
			if err != nil {
				return common.NewUserError("could not fetch ESG data for this ticker", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("ESG Scores for %s", scores.Ticker)))

			for _, group := range esg.Groups(scores) {
				fmt.Println(cli.BoldStyle.Render(group.Name))
				for _, m := range group.Metrics {
					if m.Value != nil {
						fmt.Printf("  %-20s %s %.1f\n", m.Name, cli.Bar(int(*m.Value), 100, 20), *m.Value)
					} else {
						fmt.Printf("  %-20s %s\n", m.Name, m.Text)
					}
				}
			}

			exclusions := esg.Exclusions(scores)
			if len(exclusions) > 0 {
				fmt.Println(cli.BoldStyle.Render("Exclusions & Ethical Flags"))
				for _, sector := range exclusions {
					fmt.Printf("  %s\n", sector.Name)
					for _, flag := range sector.Flags {
						mark := "✅ No"
						if flag.Flagged {
							mark = cli.FormatError("Flagged")
						}
						fmt.Printf("    %-22s %s\n", flag.Name, mark)
					}
				}
			}
			return nil
		},
	}
}
