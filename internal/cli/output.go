package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/tidal-presence/internal/core"
	"github.com/tessro/tidal-presence/internal/discord"
	"golang.org/x/term"
)

var (
	tidalCyan = lipgloss.Color("#33FFEE")
	warning   = lipgloss.Color("#F59E0B")
	textDim   = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(textDim)
	playingStyle = lipgloss.NewStyle().Foreground(tidalCyan)
	pausedStyle  = lipgloss.NewStyle().Foreground(warning)
)

// stylesEnabled reports whether stdout is a terminal.
func stylesEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderStatus formats a snapshot and its presence payload for humans.
func renderStatus(s *core.Snapshot, a *discord.Activity, styled bool) string {
	render := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}

	icon, iconStyle := "⏸", pausedStyle
	if s.IsPlaying() {
		icon, iconStyle = "▶", playingStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", render(iconStyle, icon), render(titleStyle, s.Title))
	fmt.Fprintf(&b, "  %s\n", a.State)

	if s.Duration > 0 {
		fmt.Fprintf(&b, "  %s %s / %s\n",
			FormatProgress(s.Elapsed, s.Duration, 30),
			core.FormatDuration(s.Elapsed),
			core.FormatDuration(s.Duration))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", render(labelStyle, "details:"), a.Details)
	fmt.Fprintf(&b, "%s %s\n", render(labelStyle, "state:  "), a.State)
	if a.Assets != nil {
		fmt.Fprintf(&b, "%s %s\n", render(labelStyle, "label:  "), a.Assets.LargeText)
		fmt.Fprintf(&b, "%s %s (%s)\n", render(labelStyle, "icon:   "), a.Assets.SmallImage, a.Assets.SmallText)
	}
	if a.Timestamps != nil {
		fmt.Fprintf(&b, "%s %d → %d\n", render(labelStyle, "times:  "), a.Timestamps.Start, a.Timestamps.End)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatProgress formats a progress bar.
func FormatProgress(current, total int64, width int) string {
	if total <= 0 {
		return strings.Repeat("─", width)
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
}
