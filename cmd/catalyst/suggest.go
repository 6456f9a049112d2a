package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/catalyst/internal/cli"
	"github.com/verdantlabs/catalyst/internal/suggest"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <text>",
		Short: "Suggest search prompts for a partial query",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			input := strings.Join(args, " ")
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			suggestions := suggest.NewEngine(nil, rng).Suggestions(input)

			if len(suggestions) == 0 {
				fmt.Println(cli.FormatWarning("No suggestions."))
				return
			}
			for _, s := range suggestions {
				fmt.Printf("  %s\n", s)
			}
		},
	}
}
