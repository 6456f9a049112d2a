package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/catalyst/internal/cli"
	"github.com/verdantlabs/catalyst/internal/sdg"
)

func categoriesCmd() *cobra.Command {
	var showKeywords bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the SDG keyword table",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.FormatTitle("SDG Categories"))

			for _, cat := range sdg.Categories() {
				fmt.Printf("%s  %d keyword(s)\n", cli.Badge(cat.Name, cat.Color), len(cat.Keywords))
				if showKeywords {
					fmt.Println(cli.SubtleStyle.Render("  " + strings.Join(cat.Keywords, ", ")))
				}
			}
		},
	}

	cmd.Flags().BoolVar(&showKeywords, "keywords", false, "show the trigger keywords for each SDG")
	return cmd
}
