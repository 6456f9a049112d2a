// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verdantlabs/catalyst/internal/model"
)

var (
	// PrimaryColor is the main theme color (catalyst green).
	PrimaryColor = lipgloss.Color("#4c9f38")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#e5243b")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#fcc30b")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// badgeStyle is the base style for SDG badges; the background comes from
	// the category's official color.
	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	barStyle = lipgloss.NewStyle().Foreground(PrimaryColor)
)

// Sentiment icons, matching the dashboard's emoji.
var sentimentIcons = map[model.Sentiment]string{
	model.SentimentPositive: "😊",
	model.SentimentNeutral:  "😐",
	model.SentimentNegative: "😞",
}

// Badge renders a category name on its official SDG color.
func Badge(name, hexColor string) string {
	return badgeStyle.Background(lipgloss.Color(hexColor)).Render(name)
}

// SentimentIcon returns the emoji for a sentiment label.
func SentimentIcon(s model.Sentiment) string {
	return sentimentIcons[s]
}

// FormatSentiment renders a sentiment label with its icon and scores.
func FormatSentiment(c model.Classification) string {
	return fmt.Sprintf("%s %s (polarity %.2f, subjectivity %.2f)",
		string(c.Sentiment), SentimentIcon(c.Sentiment), c.Polarity, c.Subjectivity)
}

// Bar renders a horizontal bar scaled against max, width cells wide.
func Bar(count, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := count * width / max
	if filled < 1 && count > 0 {
		filled = 1
	}
	return barStyle.Render(strings.Repeat("█", filled))
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render("🌍 " + title)
}

// FormatError formats an error message.
func FormatError(message string) string {
	return ErrorStyle.Render("✗ " + message)
}

// FormatWarning formats a warning message.
func FormatWarning(message string) string {
	return WarningStyle.Render("⚠ " + message)
}
