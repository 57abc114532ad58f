package report

import (
	"fmt"
	"strings"
)

// FlowSeparator joins consecutive tags of an emotional flow.
const FlowSeparator = " → "

// Render formats a Report as the plain-text analysis document.
func Render(r Report) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("📊 %s", r.Title)
	line("%s", strings.Repeat("=", 50))
	line("Total sentences analyzed: %d", r.Total)
	line("- No emotion detected: %d sentences", r.NoEmotion)
	line("- Single emotion: %d sentences", r.SingleEmotion)
	line("- Multiple emotions: %d sentences", r.MultiEmotion)

	line("")
	if len(r.Excluded) > 0 {
		line("🔹 Overall Emotion Frequency (excluding %s):", strings.Join(r.Excluded, ", "))
	} else {
		line("🔹 Overall Emotion Frequency:")
	}
	for _, c := range r.Frequencies {
		line("- %s: %d", c.Label, c.N)
	}

	line("")
	line("🔹 Sentiment Distribution:")
	for _, c := range r.Sentiments {
		line("- %s: %d (%.1f%%)", c.Label, c.N, percent(c.N, r.Total))
	}

	line("")
	line("🔹 Emotional Flow Across Speech (dominant emotion per sentence):")
	line("%s", strings.Join(r.Flow, FlowSeparator))

	line("")
	line("KEY INSIGHTS:")
	if r.Dominant != "" {
		line("- Dominant emotion: %s", r.Dominant)
	}
	if r.HasRatio {
		line("- Positive to Negative ratio: %.2f:1", r.Ratio)
	}
	line("- Emotional flow suggests how tone shifts across the speech.")

	line("")
	line("🔹 EMOTIONAL ANALYSIS PER PART:")
	for _, p := range r.Parts {
		line("")
		line("%s:", p.Name)
		line("- Dominant emotion: %s", p.Dominant)
		line("- Average polarity: %.3f", p.AvgPolarity)
		line("- Sentence count: %d", p.Sentences)
		if p.Sentences > 0 {
			line("- Emotional flow in part: %s", strings.Join(p.Flow, FlowSeparator))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
