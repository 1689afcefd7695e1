package lander

import (
	"testing"

	"github.com/MilanAdd/ow-autonomy/telemetry"
)

type busEvent struct {
	name   string
	value  telemetry.Value
	params []string
}

func recordingBus() (*telemetry.Bus, *[]busEvent) {
	bus := telemetry.NewBus()
	events := new([]busEvent)
	bus.Notify(func(name string, value telemetry.Value, params ...string) {
		*events = append(*events, busEvent{name, value, params})
	})
	return bus, events
}

func TestMarkRunningAndFinished(t *testing.T) {
	bus, events := recordingBus()
	ops := newOperations(bus)
	ops.register("MoveGuarded")

	var ackID int
	var ackSuccess bool
	acks := 0
	ops.setStatusFunc(func(id int, success bool) {
		ackID = id
		ackSuccess = success
		acks++
	})

	if !ops.markRunning("MoveGuarded", 7) {
		t.Fatal("markRunning refused a fresh operation")
	}
	if running, known := ops.runningState("MoveGuarded"); !known || !running {
		t.Errorf("runningState = %t, %t; want running and known", running, known)
	}
	if v, ok := bus.Lookup("Running", "MoveGuarded"); !ok || v != true {
		t.Errorf("bus Running lookup = %v, %t; want true", v, ok)
	}

	ops.markFinished("MoveGuarded", 7, true)
	if running, _ := ops.runningState("MoveGuarded"); running {
		t.Error("operation still running after markFinished")
	}
	if acks != 1 || ackID != 7 || !ackSuccess {
		t.Errorf("status ack = (%d, %t) seen %d times; want (7, true) once",
			ackID, ackSuccess, acks)
	}

	want := []busEvent{
		{"Running", true, []string{"MoveGuarded"}},
		{"Running", false, []string{"MoveGuarded"}},
		{"Finished", true, []string{"MoveGuarded"}},
	}
	if len(*events) != len(want) {
		t.Fatalf("bus saw %d events; want %d", len(*events), len(want))
	}
	for i, ev := range *events {
		if ev.name != want[i].name || ev.value != want[i].value {
			t.Errorf("event %d = %s %v; want %s %v",
				i, ev.name, ev.value, want[i].name, want[i].value)
		}
		if len(ev.params) != 1 || ev.params[0] != "MoveGuarded" {
			t.Errorf("event %d params = %v; want [MoveGuarded]", i, ev.params)
		}
	}
}

func TestMarkRunningRefusesDuplicate(t *testing.T) {
	ops := newOperations(telemetry.NewBus())
	ops.register("StartPlanning")

	if !ops.markRunning("StartPlanning", 1) {
		t.Fatal("first request refused")
	}
	if ops.markRunning("StartPlanning", 2) {
		t.Error("duplicate request accepted")
	}
	if running, _ := ops.runningState("StartPlanning"); !running {
		t.Error("refused duplicate cleared the running state")
	}
}

func TestMarkRunningUnknownOperation(t *testing.T) {
	ops := newOperations(telemetry.NewBus())
	if ops.markRunning("DigTrench", 3) {
		t.Error("unregistered operation accepted")
	}
}

func TestMarkFinishedIdleOperation(t *testing.T) {
	// Finishing an operation that was never marked running still
	// settles it and acknowledges the command.
	ops := newOperations(telemetry.NewBus())
	ops.register("PublishTrajectory")

	acked := false
	ops.setStatusFunc(func(id int, success bool) {
		acked = true
		if id != 4 || success {
			t.Errorf("ack = (%d, %t); want (4, false)", id, success)
		}
	})

	ops.markFinished("PublishTrajectory", 4, false)
	if !acked {
		t.Error("no acknowledgement for the finished operation")
	}
	if running, _ := ops.runningState("PublishTrajectory"); running {
		t.Error("operation running after markFinished")
	}
}

func TestMarkFinishedIdleIDSkipsAck(t *testing.T) {
	ops := newOperations(telemetry.NewBus())
	ops.register("MoveGuarded")
	ops.setStatusFunc(func(id int, success bool) {
		t.Errorf("unexpected ack (%d, %t) for an uncommanded finish", id, success)
	})

	ops.markRunning("MoveGuarded", IdleID)
	ops.markFinished("MoveGuarded", IdleID, true)
}

func TestMarkFinishedUnknownOperation(t *testing.T) {
	ops := newOperations(telemetry.NewBus())
	ops.setStatusFunc(func(id int, success bool) {
		t.Errorf("unexpected ack (%d, %t) for an unknown operation", id, success)
	})
	ops.markFinished("DigTrench", 5, true)
}

func TestRunningStateUnknown(t *testing.T) {
	ops := newOperations(telemetry.NewBus())
	if _, known := ops.runningState("Nope"); known {
		t.Error("unknown operation reported as known")
	}
	if ops.isOperation("Nope") {
		t.Error("isOperation true for an unregistered name")
	}
}
