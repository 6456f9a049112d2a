package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/catalyst/internal/cli"
	"github.com/verdantlabs/catalyst/internal/model"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify one snippet, or one snippet per stdin line",
		Long: `Classify text against the SDG keyword table and score its sentiment.

With arguments, the arguments are joined into a single snippet. Without
arguments, each line of stdin is classified as its own snippet.`,
		RunE: func(_ *cobra.Command, args []string) error {
			classifier := newClassifier()

			if len(args) > 0 {
				text := strings.Join(args, " ")
				printClassification(text, classifier.Classify(text))
				return nil
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			snippets, skipped := 0, 0
			for scanner.Scan() {
				text := scanner.Text()
				if !utf8.ValidString(text) {
					skipped++
					continue
				}
				printClassification(text, classifier.Classify(text))
				snippets++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			if skipped > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Skipped %d malformed snippet(s)", skipped)))
			}
			if snippets == 0 {
				fmt.Println(cli.FormatWarning("No input to classify."))
			}
			return nil
		},
	}
}

func printClassification(text string, c model.Classification) {
	display := text
	if len(display) > 60 {
		display = display[:57] + "..."
	}
	fmt.Println(cli.BoldStyle.Render(display))
	fmt.Printf("Sentiment: %s\n", cli.FormatSentiment(c))

	if len(c.Categories) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No SDGs identified"))
	} else {
		for _, name := range c.Categories {
			fmt.Printf("  %s (triggered by: %s)\n", name, strings.Join(c.Triggers[name], ", "))
		}
	}
	fmt.Println()
}
