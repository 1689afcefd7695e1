package actionlib

import (
	"testing"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
)

func TestClientStateMachineHappyPath(t *testing.T) {
	sm := newClientStateMachine()
	if sm.getState() != WaitingForGoalAck {
		t.Error(sm.getState())
	}

	steps, err := sm.transitionsFor(actionlib_msgs.ACTIVE)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 1 || steps[0] != Active {
		t.Error(steps)
	}
	sm.setState(Active)

	steps, err = sm.transitionsFor(actionlib_msgs.SUCCEEDED)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 1 || steps[0] != WaitingForResult {
		t.Error(steps)
	}
}

func TestClientStateMachinePreemptFromPending(t *testing.T) {
	sm := newClientStateMachine()
	sm.setState(Pending)

	steps, err := sm.transitionsFor(actionlib_msgs.PREEMPTED)
	if err != nil {
		t.Fatal(err)
	}
	want := []CommState{Active, Preempting, WaitingForResult}
	if len(steps) != len(want) {
		t.Fatal(steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Error(i, steps[i])
		}
	}
}

func TestClientStateMachineNoChange(t *testing.T) {
	sm := newClientStateMachine()
	sm.setState(Pending)

	steps, err := sm.transitionsFor(actionlib_msgs.PENDING)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 0 {
		t.Error(steps)
	}
}

func TestClientStateMachineInvalidStatus(t *testing.T) {
	sm := newClientStateMachine()
	sm.setState(Active)

	if _, err := sm.transitionsFor(actionlib_msgs.PENDING); err == nil {
		t.Error("PENDING while ACTIVE should fail")
	}

	sm.setState(Done)
	if _, err := sm.transitionsFor(actionlib_msgs.PREEMPTING); err == nil {
		t.Error("PREEMPTING while DONE should fail")
	}
}

func TestClientStateMachineCancelAck(t *testing.T) {
	sm := newClientStateMachine()
	sm.setState(WaitingForCancelAck)

	steps, err := sm.transitionsFor(actionlib_msgs.RECALLED)
	if err != nil {
		t.Fatal(err)
	}
	want := []CommState{Recalling, WaitingForResult}
	if len(steps) != len(want) {
		t.Fatal(steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Error(i, steps[i])
		}
	}
}

func TestCommStateString(t *testing.T) {
	if WaitingForGoalAck.String() != "WAITING_FOR_GOAL_ACK" {
		t.Error(WaitingForGoalAck.String())
	}
	if Done.String() != "DONE" {
		t.Error(Done.String())
	}
	if CommState(42).String() != "CommState(42)" {
		t.Error(CommState(42).String())
	}
}
