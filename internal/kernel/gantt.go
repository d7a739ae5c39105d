package kernel

import (
	"strconv"
	"strings"

	"github.com/eduos/kernel/internal/process"
)

// RowState is a PCB's state as it appears in one Gantt row.
type RowState string

const (
	RowRun   RowState = "RUN"
	RowWait  RowState = "WAIT"
	RowReady RowState = "READY"
	RowEnd   RowState = "END"
)

func rowStateFor(s process.State) RowState {
	switch s {
	case process.StateRunning:
		return RowRun
	case process.StateWaiting:
		return RowWait
	case process.StateReady, process.StateNew:
		return RowReady
	case process.StateTerminated:
		return RowEnd
	default:
		return RowReady
	}
}

// StopFunc decides when the recorder should flush, given the tick it was
// just sampled at. spec.md §9 flags the original's hard-coded tick-30 flush
// as needing to become configurable; StopFunc is that configuration point —
// a literal tick count or "no PCB alive" are both just functions of it.
type StopFunc func(tick int) bool

// StopAtTick returns a StopFunc that fires once tick is reached.
func StopAtTick(tick int) StopFunc {
	return func(t int) bool { return t >= tick }
}

// GanttRecorder appends one row per STAT interrupt — a per-PCB state
// snapshot — and marks itself flushed the first time its StopFunc fires.
// Marking is all a flush does: the recorder writes nothing out itself and
// keeps sampling afterwards; Render produces the table on request.
type GanttRecorder struct {
	table   *process.Table
	stop    StopFunc
	rows    [][]RowState
	ticks   []int
	flushed bool
}

// NewGanttRecorder returns a recorder sampling table, flushing on stop.
func NewGanttRecorder(table *process.Table, stop StopFunc) *GanttRecorder {
	return &GanttRecorder{table: table, stop: stop}
}

// Sample appends one row reflecting every PCB's state at tick.
func (g *GanttRecorder) Sample(tick int) {
	row := make([]RowState, 0, len(g.table.All()))
	for _, pcb := range g.table.All() {
		row = append(row, rowStateFor(pcb.State()))
	}
	g.rows = append(g.rows, row)
	g.ticks = append(g.ticks, tick)

	if !g.flushed && g.stop(tick) {
		g.flushed = true
	}
}

// Flushed reports whether the stop condition has fired.
func (g *GanttRecorder) Flushed() bool {
	return g.flushed
}

// Rows returns every sampled row so far, oldest first.
func (g *GanttRecorder) Rows() [][]RowState {
	return g.rows
}

// Render produces a plain tabular dump of the recorded rows. Actual Gantt
// chart presentation is an external collaborator (spec.md §1); this exists
// only so tests and the demo binary have something to print without
// depending on a rendering library from core.
func (g *GanttRecorder) Render() string {
	var b strings.Builder
	for i, row := range g.rows {
		b.WriteString("tick ")
		b.WriteString(strconv.Itoa(g.ticks[i]))
		for _, state := range row {
			b.WriteByte('\t')
			b.WriteString(string(state))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
