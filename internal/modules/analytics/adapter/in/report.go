package in

import (
	"fmt"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"

	analyticsdto "focustracker/internal/modules/analytics/dto"
	"focustracker/internal/platform/markdown"
)

const (
	barWidth  = 20
	noteBlock = "focustracker:summary"
)

// MarkdownReport renders the analytics overview as markdown for the terminal.
func MarkdownReport(summary analyticsdto.SummaryOutput, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Analytics\n\n")
	b.WriteString("| Current Streak | Weekly Average | Total Sessions |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| %d days | %d min/day | %d |\n\n", summary.Streak, summary.WeeklyAverage, summary.TotalSessions)

	b.WriteString("## Daily Focus Minutes (Last 7 Days)\n\n")
	peak := 0
	for _, d := range summary.Daily {
		if d.Minutes > peak {
			peak = d.Minutes
		}
	}
	b.WriteString("```\n")
	for _, d := range summary.Daily {
		fmt.Fprintf(&b, "%s %s %s %d min\n", dayLabel(d.Date), d.Date[5:], bar(d.Minutes, peak), d.Minutes)
	}
	b.WriteString("```\n\n")

	b.WriteString("## Recent Sessions\n\n")
	if len(summary.Recent) == 0 {
		b.WriteString("_No sessions recorded yet. Start a timer to see your progress!_\n")
		return b.String()
	}
	for _, s := range summary.Recent {
		fmt.Fprintf(&b, "- **%s** %d min, %s\n", s.Type, roundMinutes(s.DurationMS), startedLabel(s, now))
	}
	return b.String()
}

func bar(minutes, peak int) string {
	if peak <= 0 || minutes <= 0 {
		return strings.Repeat("·", barWidth)
	}
	filled := minutes * barWidth / peak
	if filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled)
}

func dayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "   "
	}
	return t.Format("Mon")
}

func startedLabel(s analyticsdto.SessionOutput, now time.Time) string {
	started, err := time.Parse(time.RFC3339, s.Start)
	if err != nil {
		return s.Date
	}
	return humanize.RelTime(started, now, "ago", "from now")
}

func roundMinutes(ms int64) int64 {
	return (ms + 30000) / 60000
}

// UpdateNote refreshes the summary block and focus_* frontmatter fields of an
// existing markdown note, leaving the rest of the note untouched.
func UpdateNote(existing string, summary analyticsdto.SummaryOutput, now time.Time) (string, error) {
	note, err := markdown.Parse(existing)
	if err != nil {
		return "", fmt.Errorf("parse note: %w", err)
	}
	note.Meta["focus_updated"] = now.Format(time.RFC3339)
	note.Meta["focus_streak"] = summary.Streak
	note.Meta["focus_total_minutes"] = summary.TotalMinutes
	note.Meta["focus_sessions"] = summary.TotalSessions

	report := strings.Replace(MarkdownReport(summary, now), "# Analytics", "## Focus Summary", 1)
	note.Body = markdown.UpsertBlock(note.Body, noteBlock, report)
	return note.String()
}
