package plexil

import (
	"github.com/MilanAdd/ow-autonomy/lander"
	"github.com/MilanAdd/ow-autonomy/telemetry"
)

// Lander is the slice of the lander interface that plan commands and
// lookups drive. *lander.Interface satisfies it.
type Lander interface {
	TiltAntenna(degrees float64)
	PanAntenna(degrees float64)
	TakePicture()
	DigTrench(x, y, z, depth, length, width, pitch, yaw, dumpX, dumpY, dumpZ float64)
	StartPlanning(id int, useDefaults bool, trenchX, trenchY, trenchD float64, deletePrevTraj bool)
	MoveGuarded(id int, targetX, targetY, targetZ, normalX, normalY, normalZ, offsetDistance, overdriveDistance float64, deletePrevTraj, retract bool)
	MoveGuardedAction(id int, targetX, targetY, targetZ, normalX, normalY, normalZ, offsetDistance, overdriveDistance float64, deletePrevTraj, retract bool)
	PublishTrajectory(id int, useLatest bool, filename string)

	Tilt() float64
	PanDegrees() float64
	PanVelocity() float64
	TiltVelocity() float64
	ImageReceived() bool
	Running(name string) bool
	Finished(name string) bool
	HardTorqueLimitReached(jointName string) bool
	SoftTorqueLimitReached(jointName string) bool
}

// Guarded move argument defaults, matching the demo plans: a target
// just in front of the lander, straight-down surface normal.
const (
	defaultTargetX           = 2.0
	defaultTargetY           = 0.0
	defaultTargetZ           = 0.02
	defaultSurfaceNormalZ    = 1.0
	defaultOffsetDistance    = 0.2
	defaultOverdriveDistance = 0.05
)

// Bind registers the lander command set and lookup set on the
// adapter.
func Bind(adapter *Adapter, iface Lander) {
	adapter.RegisterCommand("TiltAntenna", func(id int, args []interface{}) error {
		degrees, err := floatArg(args, 0, 0)
		if err != nil {
			return err
		}
		iface.TiltAntenna(degrees)
		adapter.Ack(id, true)
		return nil
	})

	adapter.RegisterCommand("PanAntenna", func(id int, args []interface{}) error {
		degrees, err := floatArg(args, 0, 0)
		if err != nil {
			return err
		}
		iface.PanAntenna(degrees)
		adapter.Ack(id, true)
		return nil
	})

	adapter.RegisterCommand("TakePicture", func(id int, args []interface{}) error {
		iface.TakePicture()
		adapter.Ack(id, true)
		return nil
	})

	adapter.RegisterCommand("DigTrench", func(id int, args []interface{}) error {
		var coords [11]float64
		for i := range coords {
			v, err := floatArg(args, i, 0)
			if err != nil {
				return err
			}
			coords[i] = v
		}
		iface.DigTrench(coords[0], coords[1], coords[2],
			coords[3], coords[4], coords[5], coords[6], coords[7],
			coords[8], coords[9], coords[10])
		adapter.Ack(id, true)
		return nil
	})

	adapter.RegisterCommand(lander.OpStartPlanning, func(id int, args []interface{}) error {
		useDefaults, err := boolArg(args, 0, true)
		if err != nil {
			return err
		}
		trenchX, err := floatArg(args, 1, 0)
		if err != nil {
			return err
		}
		trenchY, err := floatArg(args, 2, 0)
		if err != nil {
			return err
		}
		trenchD, err := floatArg(args, 3, 0)
		if err != nil {
			return err
		}
		deletePrevTraj, err := boolArg(args, 4, false)
		if err != nil {
			return err
		}
		iface.StartPlanning(id, useDefaults, trenchX, trenchY, trenchD, deletePrevTraj)
		return nil
	})

	adapter.RegisterCommand(lander.OpMoveGuarded, func(id int, args []interface{}) error {
		g, err := guardedMoveArgs(args)
		if err != nil {
			return err
		}
		iface.MoveGuarded(id, g.targetX, g.targetY, g.targetZ,
			g.normalX, g.normalY, g.normalZ,
			g.offsetDistance, g.overdriveDistance,
			g.deletePrevTraj, g.retract)
		return nil
	})

	adapter.RegisterCommand(lander.OpMoveGuardedAction, func(id int, args []interface{}) error {
		g, err := guardedMoveArgs(args)
		if err != nil {
			return err
		}
		iface.MoveGuardedAction(id, g.targetX, g.targetY, g.targetZ,
			g.normalX, g.normalY, g.normalZ,
			g.offsetDistance, g.overdriveDistance,
			g.deletePrevTraj, g.retract)
		return nil
	})

	adapter.RegisterCommand(lander.OpPublishTrajectory, func(id int, args []interface{}) error {
		useLatest, err := boolArg(args, 0, true)
		if err != nil {
			return err
		}
		filename, err := stringArg(args, 1, lander.DefaultTrajectoryFile)
		if err != nil {
			return err
		}
		iface.PublishTrajectory(id, useLatest, filename)
		return nil
	})

	adapter.RegisterLookup("TiltDegrees", func(params ...string) (telemetry.Value, bool) {
		return iface.Tilt(), true
	})
	adapter.RegisterLookup("PanDegrees", func(params ...string) (telemetry.Value, bool) {
		return iface.PanDegrees(), true
	})
	adapter.RegisterLookup("PanVelocity", func(params ...string) (telemetry.Value, bool) {
		return iface.PanVelocity(), true
	})
	adapter.RegisterLookup("TiltVelocity", func(params ...string) (telemetry.Value, bool) {
		return iface.TiltVelocity(), true
	})
	adapter.RegisterLookup("ImageReceived", func(params ...string) (telemetry.Value, bool) {
		return iface.ImageReceived(), true
	})
	adapter.RegisterLookup("HardTorqueLimitReached", func(params ...string) (telemetry.Value, bool) {
		if len(params) == 0 {
			return nil, false
		}
		return iface.HardTorqueLimitReached(params[0]), true
	})
	adapter.RegisterLookup("SoftTorqueLimitReached", func(params ...string) (telemetry.Value, bool) {
		if len(params) == 0 {
			return nil, false
		}
		return iface.SoftTorqueLimitReached(params[0]), true
	})
	adapter.RegisterLookup("Running", func(params ...string) (telemetry.Value, bool) {
		if len(params) == 0 {
			return nil, false
		}
		return iface.Running(params[0]), true
	})
	adapter.RegisterLookup("Finished", func(params ...string) (telemetry.Value, bool) {
		if len(params) == 0 {
			return nil, false
		}
		return iface.Finished(params[0]), true
	})
}

type guardedMove struct {
	targetX, targetY, targetZ         float64
	normalX, normalY, normalZ         float64
	offsetDistance, overdriveDistance float64
	deletePrevTraj, retract           bool
}

func guardedMoveArgs(args []interface{}) (guardedMove, error) {
	var g guardedMove
	var err error
	if g.targetX, err = floatArg(args, 0, defaultTargetX); err != nil {
		return g, err
	}
	if g.targetY, err = floatArg(args, 1, defaultTargetY); err != nil {
		return g, err
	}
	if g.targetZ, err = floatArg(args, 2, defaultTargetZ); err != nil {
		return g, err
	}
	if g.normalX, err = floatArg(args, 3, 0); err != nil {
		return g, err
	}
	if g.normalY, err = floatArg(args, 4, 0); err != nil {
		return g, err
	}
	if g.normalZ, err = floatArg(args, 5, defaultSurfaceNormalZ); err != nil {
		return g, err
	}
	if g.offsetDistance, err = floatArg(args, 6, defaultOffsetDistance); err != nil {
		return g, err
	}
	if g.overdriveDistance, err = floatArg(args, 7, defaultOverdriveDistance); err != nil {
		return g, err
	}
	if g.deletePrevTraj, err = boolArg(args, 8, false); err != nil {
		return g, err
	}
	if g.retract, err = boolArg(args, 9, false); err != nil {
		return g, err
	}
	return g, nil
}
