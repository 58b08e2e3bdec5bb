package display

// Viewport describes one frame's drawing budget. The renderer constructs a
// fresh Viewport per frame and the layout engine never retains it; the
// measurement function is the only thing that differs between the scalable
// canvas (proportional rune widths) and the fixed grid (summed per-character
// advances).
type Viewport struct {
	// RowCapacity is the maximum number of rows the frame can hold. Extra
	// records are dropped whole, never partially drawn.
	RowCapacity int
	// WidthBudget is the usable width in measurement units.
	WidthBudget int
	// CountdownReserve is the width kept clear on the right for the
	// countdown column. The center label is clamped so it never enters it.
	CountdownReserve int
	// BadgeMargin is the gap between the badge and the center label.
	BadgeMargin int
	// IconAdvance is the width an icon badge occupies.
	IconAdvance int
	// MaxChars and BadgeMaxChars are hard prefix-cut budgets for the
	// center label and badge text.
	MaxChars      int
	BadgeMaxChars int
	// MinuteSuffix is the countdown unit (" min" on the canvas, "m" on the
	// compact grid); NilCountdown is the unknown-minutes placeholder.
	MinuteSuffix string
	NilCountdown string
	// Measure returns the width of a text in this viewport's units.
	Measure func(text string) int
}

// PlacedRow is the layout engine's output: one fully positioned, colored,
// truncated board row ready to draw.
type PlacedRow struct {
	Row int

	// BadgeText is empty when IconKey is set; the badge decision is made
	// once here, renderers do not re-evaluate it.
	BadgeText  string
	IconKey    string
	BadgeColor Color
	BadgeX     int

	CenterText  string
	CenterColor Color
	CenterX     int

	CountdownText  string
	CountdownColor Color
	CountdownX     int
}

// Truncate hard-cuts text to a rune budget. No ellipsis; the cut is
// idempotent.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
