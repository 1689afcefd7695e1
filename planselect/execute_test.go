package planselect

import (
	"testing"
)

func TestExecuteDispatchesOperation(t *testing.T) {
	s, _, _, pub := newTestSelection("None")
	s.adapter.SetAckFunc(s.CommandStatus)

	var gotID int
	var gotArgs []interface{}
	s.adapter.RegisterCommand("TiltAntenna", func(id int, args []interface{}) error {
		gotID = id
		gotArgs = args
		s.adapter.Ack(id, true)
		return nil
	})

	command(s, "EXECUTE", `{"operation": "TiltAntenna", "args": [30.0]}`)

	if gotID != 1 {
		t.Errorf("dispatched id = %d; want 1", gotID)
	}
	if len(gotArgs) != 1 || gotArgs[0] != 30.0 {
		t.Errorf("dispatched args = %v", gotArgs)
	}
	wantStatuses(t, pub, "TiltAntenna:complete")
}

func TestExecuteReportsFailedOperation(t *testing.T) {
	s, _, _, pub := newTestSelection("None")
	s.adapter.SetAckFunc(s.CommandStatus)
	s.adapter.RegisterCommand("MoveGuarded", func(id int, args []interface{}) error {
		s.adapter.Ack(id, false)
		return nil
	})

	command(s, "EXECUTE", `{"operation": "MoveGuarded"}`)
	wantStatuses(t, pub, "MoveGuarded:failed")
}

func TestExecuteUnknownOperation(t *testing.T) {
	s, _, _, pub := newTestSelection("None")
	command(s, "EXECUTE", `{"operation": "Fly"}`)
	wantStatuses(t, pub, "Fly:failed")
}

func TestExecuteMalformedRequest(t *testing.T) {
	s, _, _, pub := newTestSelection("None")

	command(s, "EXECUTE")
	command(s, "EXECUTE", `{nope`)
	command(s, "EXECUTE", `{"args": [1.0]}`)

	wantStatuses(t, pub, "EXECUTE:failed", "EXECUTE:failed", "EXECUTE:failed")
}

func TestCommandStatusUnknownID(t *testing.T) {
	s, _, _, pub := newTestSelection("None")
	s.CommandStatus(99, true)
	wantStatuses(t, pub)
}

func TestParseOperation(t *testing.T) {
	name, args, err := parseOperation([]byte(
		`{"operation": "PublishTrajectory", "args": [false, "saved.txt", 2.5]}`))
	if err != nil {
		t.Fatalf("parseOperation: %v", err)
	}
	if name != "PublishTrajectory" {
		t.Errorf("name = %s", name)
	}
	if len(args) != 3 || args[0] != false || args[1] != "saved.txt" || args[2] != 2.5 {
		t.Errorf("args = %v", args)
	}
}

func TestParseOperationNoArgs(t *testing.T) {
	name, args, err := parseOperation([]byte(`{"operation": "TakePicture"}`))
	if err != nil {
		t.Fatalf("parseOperation: %v", err)
	}
	if name != "TakePicture" || len(args) != 0 {
		t.Errorf("parseOperation = %s, %v", name, args)
	}
}

func TestParseOperationRejectsBadInput(t *testing.T) {
	bad := []string{
		`{}`,
		`{"operation": 5}`,
		`{"operation": "TakePicture", "args": [null]}`,
		`{"operation": "TakePicture", "args": [{"x": 1}]}`,
	}
	for _, data := range bad {
		if _, _, err := parseOperation([]byte(data)); err == nil {
			t.Errorf("parseOperation(%s) accepted", data)
		}
	}
}
