package pipeline

import (
	"testing"
	"time"
)

func TestTimings(t *testing.T) {
	var tm Timings
	if tm.Has(StageLoad) {
		t.Fatal("zero Timings has a stage")
	}
	tm.Set(StageLoad, time.Millisecond)
	tm.Add(StageSolve, 2*time.Millisecond)
	tm.Add(StageSolve, 3*time.Millisecond)

	if got := tm.Duration(StageSolve); got != 5*time.Millisecond {
		t.Errorf("Duration(solve) = %v", got)
	}
	if got := tm.Sum(StageLoad, StageSolve, StageScan); got != 6*time.Millisecond {
		t.Errorf("Sum = %v", got)
	}
	var nilTimings *Timings
	nilTimings.Set(StageLoad, time.Second)
}

func TestSinks(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ChannelSink{Ch: ch}, Event{Item: "day01", Stage: StageSolve, Status: StatusDone})
	if ev := <-ch; ev.Item != "day01" || ev.Status != StatusDone {
		t.Errorf("got %+v", ev)
	}

	var seen []Status
	Emit(FuncSink(func(ev Event) { seen = append(seen, ev.Status) }), Event{Status: StatusQueued})
	Emit(nil, Event{Status: StatusError})
	ChannelSink{}.OnEvent(Event{})
	if len(seen) != 1 || seen[0] != StatusQueued {
		t.Errorf("seen = %v", seen)
	}
}
