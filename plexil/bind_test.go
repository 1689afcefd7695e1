package plexil

import (
	"testing"

	"github.com/MilanAdd/ow-autonomy/lander"
	"github.com/MilanAdd/ow-autonomy/telemetry"
)

// fakeLander records the command calls Bind forwards and answers
// lookups with canned telemetry.
type fakeLander struct {
	tilts    []float64
	pans     []float64
	pictures int
	digs     int

	planningID      int
	planningDefault bool
	planningTrench  [3]float64
	planningDelete  bool

	moveID       int
	move         guardedMove
	moveActionID int
	moveAction   guardedMove

	trajID       int
	trajLatest   bool
	trajFilename string
}

func (f *fakeLander) TiltAntenna(degrees float64) { f.tilts = append(f.tilts, degrees) }
func (f *fakeLander) PanAntenna(degrees float64)  { f.pans = append(f.pans, degrees) }
func (f *fakeLander) TakePicture()                { f.pictures++ }

func (f *fakeLander) DigTrench(x, y, z, depth, length, width, pitch, yaw, dumpX, dumpY, dumpZ float64) {
	f.digs++
}

func (f *fakeLander) StartPlanning(id int, useDefaults bool, trenchX, trenchY, trenchD float64, deletePrevTraj bool) {
	f.planningID = id
	f.planningDefault = useDefaults
	f.planningTrench = [3]float64{trenchX, trenchY, trenchD}
	f.planningDelete = deletePrevTraj
}

func (f *fakeLander) MoveGuarded(id int, targetX, targetY, targetZ, normalX, normalY, normalZ, offsetDistance, overdriveDistance float64, deletePrevTraj, retract bool) {
	f.moveID = id
	f.move = guardedMove{targetX, targetY, targetZ, normalX, normalY, normalZ,
		offsetDistance, overdriveDistance, deletePrevTraj, retract}
}

func (f *fakeLander) MoveGuardedAction(id int, targetX, targetY, targetZ, normalX, normalY, normalZ, offsetDistance, overdriveDistance float64, deletePrevTraj, retract bool) {
	f.moveActionID = id
	f.moveAction = guardedMove{targetX, targetY, targetZ, normalX, normalY, normalZ,
		offsetDistance, overdriveDistance, deletePrevTraj, retract}
}

func (f *fakeLander) PublishTrajectory(id int, useLatest bool, filename string) {
	f.trajID = id
	f.trajLatest = useLatest
	f.trajFilename = filename
}

func (f *fakeLander) Tilt() float64         { return 33 }
func (f *fakeLander) PanDegrees() float64   { return -20 }
func (f *fakeLander) PanVelocity() float64  { return 0.5 }
func (f *fakeLander) TiltVelocity() float64 { return 0.25 }
func (f *fakeLander) ImageReceived() bool   { return true }

func (f *fakeLander) Running(name string) bool  { return name == lander.OpMoveGuarded }
func (f *fakeLander) Finished(name string) bool { return name != lander.OpMoveGuarded }

func (f *fakeLander) HardTorqueLimitReached(jointName string) bool {
	return jointName == "ShoulderYaw"
}
func (f *fakeLander) SoftTorqueLimitReached(jointName string) bool { return false }

func boundAdapter() (*Adapter, *fakeLander) {
	adapter := NewAdapter(telemetry.NewBus())
	fake := &fakeLander{}
	Bind(adapter, fake)
	return adapter, fake
}

func TestBindImmediateCommands(t *testing.T) {
	adapter, fake := boundAdapter()

	var acks []int
	adapter.SetAckFunc(func(id int, success bool) {
		if !success {
			t.Errorf("command %d acknowledged as a failure", id)
		}
		acks = append(acks, id)
	})

	if err := adapter.ExecuteCommand("TiltAntenna", 1, []interface{}{15.0}); err != nil {
		t.Fatalf("TiltAntenna: %v", err)
	}
	if err := adapter.ExecuteCommand("PanAntenna", 2, []interface{}{-30.0}); err != nil {
		t.Fatalf("PanAntenna: %v", err)
	}
	if err := adapter.ExecuteCommand("TakePicture", 3, nil); err != nil {
		t.Fatalf("TakePicture: %v", err)
	}
	if err := adapter.ExecuteCommand("DigTrench", 4, nil); err != nil {
		t.Fatalf("DigTrench: %v", err)
	}

	if len(fake.tilts) != 1 || fake.tilts[0] != 15 {
		t.Errorf("tilts = %v", fake.tilts)
	}
	if len(fake.pans) != 1 || fake.pans[0] != -30 {
		t.Errorf("pans = %v", fake.pans)
	}
	if fake.pictures != 1 || fake.digs != 1 {
		t.Errorf("pictures = %d digs = %d", fake.pictures, fake.digs)
	}

	// Immediate commands are acknowledged as soon as they dispatch.
	if len(acks) != 4 {
		t.Fatalf("acks = %v; want one per command", acks)
	}
	for i, id := range acks {
		if id != i+1 {
			t.Errorf("acks = %v; want 1 2 3 4", acks)
			break
		}
	}
}

func TestBindStartPlanning(t *testing.T) {
	adapter, fake := boundAdapter()

	acked := false
	adapter.SetAckFunc(func(id int, success bool) { acked = true })

	if err := adapter.ExecuteCommand(lander.OpStartPlanning, 7, nil); err != nil {
		t.Fatalf("StartPlanning: %v", err)
	}
	if fake.planningID != 7 || !fake.planningDefault || fake.planningDelete {
		t.Errorf("StartPlanning(nil args) = id %d defaults %t delete %t",
			fake.planningID, fake.planningDefault, fake.planningDelete)
	}
	if fake.planningTrench != [3]float64{0, 0, 0} {
		t.Errorf("trench = %v; want zeros", fake.planningTrench)
	}

	// The planning session settles later; Bind must not acknowledge it.
	if acked {
		t.Error("long-running command acknowledged at dispatch")
	}

	args := []interface{}{false, 4.0, 5.0, 0.3, true}
	if err := adapter.ExecuteCommand(lander.OpStartPlanning, 8, args); err != nil {
		t.Fatalf("StartPlanning: %v", err)
	}
	if fake.planningID != 8 || fake.planningDefault || !fake.planningDelete {
		t.Errorf("StartPlanning(args) = id %d defaults %t delete %t",
			fake.planningID, fake.planningDefault, fake.planningDelete)
	}
	if fake.planningTrench != [3]float64{4, 5, 0.3} {
		t.Errorf("trench = %v", fake.planningTrench)
	}
}

func TestBindGuardedMoveDefaults(t *testing.T) {
	adapter, fake := boundAdapter()

	if err := adapter.ExecuteCommand(lander.OpMoveGuarded, 5, nil); err != nil {
		t.Fatalf("MoveGuarded: %v", err)
	}
	want := guardedMove{
		targetX: 2.0, targetY: 0, targetZ: 0.02,
		normalX: 0, normalY: 0, normalZ: 1.0,
		offsetDistance: 0.2, overdriveDistance: 0.05,
	}
	if fake.moveID != 5 || fake.move != want {
		t.Errorf("MoveGuarded(nil args) = id %d %+v", fake.moveID, fake.move)
	}

	args := []interface{}{1.0, 2.0, 3.0, 0.1, 0.2, 0.9, 0.4, 0.1, true, true}
	if err := adapter.ExecuteCommand(lander.OpMoveGuardedAction, 6, args); err != nil {
		t.Fatalf("MoveGuardedAction: %v", err)
	}
	want = guardedMove{1, 2, 3, 0.1, 0.2, 0.9, 0.4, 0.1, true, true}
	if fake.moveActionID != 6 || fake.moveAction != want {
		t.Errorf("MoveGuardedAction(args) = id %d %+v", fake.moveActionID, fake.moveAction)
	}
}

func TestBindPublishTrajectory(t *testing.T) {
	adapter, fake := boundAdapter()

	if err := adapter.ExecuteCommand(lander.OpPublishTrajectory, 9, nil); err != nil {
		t.Fatalf("PublishTrajectory: %v", err)
	}
	if fake.trajID != 9 || !fake.trajLatest || fake.trajFilename != lander.DefaultTrajectoryFile {
		t.Errorf("PublishTrajectory(nil args) = id %d latest %t file %s",
			fake.trajID, fake.trajLatest, fake.trajFilename)
	}

	args := []interface{}{false, "saved.txt"}
	if err := adapter.ExecuteCommand(lander.OpPublishTrajectory, 10, args); err != nil {
		t.Fatalf("PublishTrajectory: %v", err)
	}
	if fake.trajID != 10 || fake.trajLatest || fake.trajFilename != "saved.txt" {
		t.Errorf("PublishTrajectory(args) = id %d latest %t file %s",
			fake.trajID, fake.trajLatest, fake.trajFilename)
	}
}

func TestBindRejectsBadArgs(t *testing.T) {
	adapter, fake := boundAdapter()

	if err := adapter.ExecuteCommand("TiltAntenna", 1, []interface{}{"sideways"}); err == nil {
		t.Error("string accepted as a tilt angle")
	}
	if len(fake.tilts) != 0 {
		t.Errorf("rejected command still tilted: %v", fake.tilts)
	}
	if err := adapter.ExecuteCommand(lander.OpStartPlanning, 2, []interface{}{"yes"}); err == nil {
		t.Error("string accepted as use_defaults")
	}
	if err := adapter.ExecuteCommand(lander.OpMoveGuarded, 3, []interface{}{1.0, "two"}); err == nil {
		t.Error("string accepted as a move coordinate")
	}
}

func TestBindLookups(t *testing.T) {
	adapter, _ := boundAdapter()

	plain := map[string]telemetry.Value{
		"TiltDegrees":   33.0,
		"PanDegrees":    -20.0,
		"PanVelocity":   0.5,
		"TiltVelocity":  0.25,
		"ImageReceived": true,
	}
	for name, want := range plain {
		v, ok := adapter.LookupNow(name)
		if !ok || v != want {
			t.Errorf("LookupNow(%s) = %v, %t; want %v", name, v, ok, want)
		}
	}

	if v, ok := adapter.LookupNow("Running", lander.OpMoveGuarded); !ok || v != true {
		t.Errorf("Running lookup = %v, %t", v, ok)
	}
	if v, ok := adapter.LookupNow("Finished", lander.OpMoveGuarded); !ok || v != false {
		t.Errorf("Finished lookup = %v, %t", v, ok)
	}
	if v, ok := adapter.LookupNow("HardTorqueLimitReached", "ShoulderYaw"); !ok || v != true {
		t.Errorf("HardTorqueLimitReached lookup = %v, %t", v, ok)
	}
	if v, ok := adapter.LookupNow("SoftTorqueLimitReached", "ShoulderYaw"); !ok || v != false {
		t.Errorf("SoftTorqueLimitReached lookup = %v, %t", v, ok)
	}

	// Joint and operation lookups need their parameter.
	for _, name := range []string{"HardTorqueLimitReached", "SoftTorqueLimitReached", "Running", "Finished"} {
		if _, ok := adapter.LookupNow(name); ok {
			t.Errorf("LookupNow(%s) answered without a parameter", name)
		}
	}
}
