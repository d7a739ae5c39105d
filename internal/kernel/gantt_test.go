package kernel

import (
	"strings"
	"testing"

	"github.com/eduos/kernel/internal/process"
)

func TestGanttRecorderSampleProducesOneRowPerPCB(t *testing.T) {
	table := process.NewTable()
	running := process.NewPCB(table.NewPID(), "/a", 0, nil)
	running.SetState(process.StateRunning)
	waiting := process.NewPCB(table.NewPID(), "/b", 0, nil)
	waiting.SetState(process.StateWaiting)
	table.Add(running)
	table.Add(waiting)

	g := NewGanttRecorder(table, StopAtTick(100))
	g.Sample(0)

	rows := g.Rows()
	if len(rows) != 1 {
		t.Fatalf("want one row recorded, got %d", len(rows))
	}
	if len(rows[0]) != 2 || rows[0][0] != RowRun || rows[0][1] != RowWait {
		t.Fatalf("want [RUN,WAIT], got %v", rows[0])
	}
}

func TestGanttRecorderFlushesOnceStopFuncFires(t *testing.T) {
	table := process.NewTable()
	g := NewGanttRecorder(table, StopAtTick(3))

	for tick := 0; tick <= 3; tick++ {
		if g.Flushed() {
			t.Fatalf("want not flushed before tick 3, currently at tick %d", tick)
		}
		g.Sample(tick)
	}
	if !g.Flushed() {
		t.Fatalf("want flushed once tick 3 observed")
	}
}

func TestGanttRecorderNewAndTerminatedMapToExpectedRows(t *testing.T) {
	table := process.NewTable()
	fresh := process.NewPCB(table.NewPID(), "/a", 0, nil)
	done := process.NewPCB(table.NewPID(), "/b", 0, nil)
	done.SetState(process.StateRunning)
	done.SetState(process.StateTerminated)
	table.Add(fresh)
	table.Add(done)

	g := NewGanttRecorder(table, StopAtTick(1))
	g.Sample(0)

	row := g.Rows()[0]
	if row[0] != RowReady {
		t.Fatalf("want New mapped to READY row, got %v", row[0])
	}
	if row[1] != RowEnd {
		t.Fatalf("want Terminated mapped to END row, got %v", row[1])
	}
}

func TestGanttRecorderRenderIncludesTickAndStates(t *testing.T) {
	table := process.NewTable()
	pcb := process.NewPCB(table.NewPID(), "/a", 0, nil)
	pcb.SetState(process.StateRunning)
	table.Add(pcb)

	g := NewGanttRecorder(table, StopAtTick(1))
	g.Sample(5)

	out := g.Render()
	if !strings.Contains(out, "tick 5") {
		t.Fatalf("want rendered output to mention tick 5, got %q", out)
	}
	if !strings.Contains(out, string(RowRun)) {
		t.Fatalf("want rendered output to mention RUN, got %q", out)
	}
}
