package hardware

import "testing"

func TestNewTimerDisabledByDefault(t *testing.T) {
	timer := NewTimer()
	if timer.Enabled() {
		t.Fatalf("want disabled timer, quantum=%d", timer.Quantum())
	}
	for i := 0; i < 10; i++ {
		if timer.Tick() {
			t.Fatalf("disabled timer must never fire")
		}
	}
}

func TestTimerFiresEveryQuantumTicksAndResets(t *testing.T) {
	timer := NewTimer()
	timer.SetQuantum(3)

	var fired []bool
	for i := 0; i < 7; i++ {
		fired = append(fired, timer.Tick())
	}
	want := []bool{false, false, true, false, false, true, false}
	for i, w := range want {
		if fired[i] != w {
			t.Fatalf("tick %d: want %v, got %v (full=%v)", i, w, fired[i], fired)
		}
	}
}

func TestTimerResetZeroesElapsedWithoutChangingQuantum(t *testing.T) {
	timer := NewTimer()
	timer.SetQuantum(3)
	timer.Tick()
	timer.Tick()
	timer.Reset()
	if timer.Tick() {
		t.Fatalf("want no fire immediately after reset")
	}
	if timer.Quantum() != 3 {
		t.Fatalf("want quantum unchanged at 3, got %d", timer.Quantum())
	}
}

func TestTimerSetQuantumResetsElapsed(t *testing.T) {
	timer := NewTimer()
	timer.SetQuantum(2)
	timer.Tick() // elapsed=1
	timer.SetQuantum(5)
	for i := 0; i < 4; i++ {
		if timer.Tick() {
			t.Fatalf("reconfiguring quantum must restart the count, fired early at tick %d", i)
		}
	}
	if !timer.Tick() {
		t.Fatalf("want fire on the 5th tick after reconfiguring")
	}
}
