// Package plot renders a rating-over-time chart as text for the
// results view.
package plot

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Y-axis range is fixed so a full 1-10 session always has headroom.
const (
	yMin = 0
	yMax = 11
)

const (
	// minWidth keeps the chart legible on narrow terminals.
	minWidth = 20
	// labelWidth is the left gutter: a 2-digit y label, space, axis bar.
	labelWidth = 4

	pointMarker = '●'
	lineMarker  = '·'
)

// Render draws the session chart: time on the x-axis (auto range),
// rating on the y-axis (fixed to [0, 11]), points in entry order
// joined by an interpolated line. The title carries the session date,
// matching the exported data. Returns "" for empty or mismatched
// input; the caller skips plotting in that case.
func Render(times []float64, ratings []int, width int, day time.Time) string {
	if len(times) == 0 || len(times) != len(ratings) {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	cols := width - labelWidth

	tMin := times[0]
	tMax := times[0]
	for _, t := range times {
		if t < tMin {
			tMin = t
		}
		if t > tMax {
			tMax = t
		}
	}

	col := func(t float64) int {
		if tMax == tMin {
			return 0
		}
		c := int(math.Round((t - tMin) / (tMax - tMin) * float64(cols-1)))
		if c < 0 {
			c = 0
		}
		if c >= cols {
			c = cols - 1
		}
		return c
	}
	row := func(r float64) int {
		y := int(math.Round(r))
		if y < yMin {
			y = yMin
		}
		if y > yMax {
			y = yMax
		}
		return yMax - y
	}

	// Blank grid, rows from y=11 down to y=0
	grid := make([][]rune, yMax-yMin+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	// Connecting line first so points overdraw it
	for i := 1; i < len(times); i++ {
		c0, c1 := col(times[i-1]), col(times[i])
		r0, r1 := float64(ratings[i-1]), float64(ratings[i])
		if c1 <= c0+1 {
			continue
		}
		for c := c0 + 1; c < c1; c++ {
			frac := float64(c-c0) / float64(c1-c0)
			r := row(r0 + (r1-r0)*frac)
			if grid[r][c] == ' ' {
				grid[r][c] = lineMarker
			}
		}
	}

	for i := range times {
		grid[row(float64(ratings[i]))][col(times[i])] = pointMarker
	}

	var b strings.Builder
	b.WriteString(day.Format("2006-01-02"))
	b.WriteString("   Rating over Time\n\n")

	for i, line := range grid {
		y := yMax - i
		if y%5 == 0 || y == yMax {
			b.WriteString(fmt.Sprintf("%2d │", y))
		} else {
			b.WriteString("   │")
		}
		b.WriteString(string(line))
		b.WriteString("\n")
	}

	b.WriteString("   └")
	b.WriteString(strings.Repeat("─", cols))
	b.WriteString("\n")
	b.WriteString(xAxisLabels(tMin, tMax, cols))
	b.WriteString("\n")

	return b.String()
}

// xAxisLabels lays out the min and max time values at the chart edges
// with the axis caption centered between them.
func xAxisLabels(tMin, tMax float64, cols int) string {
	line := []rune(strings.Repeat(" ", labelWidth+cols))

	place := func(s string, at int) {
		for i, r := range s {
			if at+i >= 0 && at+i < len(line) {
				line[at+i] = r
			}
		}
	}

	left := formatSeconds(tMin)
	right := formatSeconds(tMax)
	caption := "Time (s)"

	place(left, labelWidth)
	place(right, labelWidth+cols-len(right))
	place(caption, labelWidth+(cols-len(caption))/2)

	return strings.TrimRight(string(line), " ")
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.1f", s)
}
