package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// Terminal theme of versectl.

const (
	IconPrayer = "📿"
	IconVerse  = "📖"
	IconDaily  = "🌅"
	IconQuiz   = "🧠"
	IconDone   = "✅"
	IconMiss   = "❌"
	IconStreak = "🔥"
	IconInfo   = "ℹ️"
	IconError  = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("208") // saffron
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Native = lipgloss.NewStyle().Bold(true)
	Roman  = lipgloss.NewStyle().Italic(true).Foreground(cMuted)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// AlignedLine stacks the transliteration under each native word of a line.
func AlignedLine(pairs []entities.WordPair) string {
	cols := make([]string, 0, len(pairs))
	for _, p := range pairs {
		top, bottom := p.NativeWord, p.TransliteratedWord
		if p.IsPunctuation {
			bottom = ""
		}
		width := max(lipgloss.Width(top), lipgloss.Width(bottom))
		cell := lipgloss.JoinVertical(lipgloss.Left,
			Native.Width(width).Render(top),
			Roman.Width(width).Render(bottom),
		)
		cols = append(cols, cell, " ")
	}
	if len(cols) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols[:len(cols)-1]...)
}

// Aligned renders every line of an aligned verse.
func Aligned(lines [][]entities.WordPair) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, AlignedLine(line))
	}
	return strings.Join(out, "\n")
}

// Verse renders a verse with its alignment and meanings in a panel.
func Verse(prayerTitle string, v entities.Verse, lines [][]entities.WordPair) string {
	var b strings.Builder
	b.WriteString(H2.Render(prayerTitle + " · " + v.Label()))
	b.WriteString("\n\n")
	if v.HasTransliteration() {
		b.WriteString(Aligned(lines))
	} else {
		b.WriteString(Native.Render(v.Text))
	}
	b.WriteString("\n\n")
	b.WriteString(LabelValue("Meaning", v.Meaning))
	if v.SimpleTranslation != "" {
		b.WriteString("\n")
		b.WriteString(LabelValue("In simple words", v.SimpleTranslation))
	}
	b.WriteString("\n")
	b.WriteString(Muted.Render(v.Explanation))
	return Panel.Render(b.String())
}
