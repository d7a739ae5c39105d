// Package display is cmd/eduos's optional colorized tick trace. It never
// reaches into internal/kernel's Gantt recorder logic — it only formats rows
// the caller already has, keeping the actual Gantt chart rendering (an
// external collaborator per spec.md §1) entirely out of the core.
package display

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/eduos/kernel/internal/kernel"
)

const (
	colorGreen  = "32"
	colorYellow = "33"
	colorCyan   = "36"
	colorGray   = "90"
)

func colorFor(state kernel.RowState) string {
	switch state {
	case kernel.RowRun:
		return colorGreen
	case kernel.RowWait:
		return colorYellow
	case kernel.RowReady:
		return colorCyan
	default:
		return colorGray
	}
}

func colorize(code, text string) string {
	return ansi.CSI + code + "m" + text + ansi.CSI + "0m"
}

// TraceRow renders one Gantt row as a colorized, tab-separated line.
func TraceRow(tick int, row []kernel.RowState) string {
	var b strings.Builder
	b.WriteString("tick ")
	b.WriteString(strconv.Itoa(tick))
	for _, state := range row {
		b.WriteByte('\t')
		b.WriteString(colorize(colorFor(state), string(state)))
	}
	return b.String()
}
