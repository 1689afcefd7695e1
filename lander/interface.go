// Package lander is the ROS-facing side of the autonomy node. It owns
// the antenna and camera topics, mirrors lander telemetry onto the
// named-value bus and carries the planning operations that plans
// invoke.
package lander

import (
	"sync"

	"github.com/MilanAdd/ow-autonomy/actionlib"
	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/control_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/ow_lander"
	"github.com/MilanAdd/ow-autonomy/msgs/ow_plexil"
	"github.com/MilanAdd/ow-autonomy/msgs/sensor_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "lander"})

// Operation names, as used in both plans and the planning stack.
const (
	OpMoveGuarded       = "MoveGuarded"
	OpStartPlanning     = "StartPlanning"
	OpPublishTrajectory = "PublishTrajectory"
	OpMoveGuardedAction = "MoveGuardedAction"
)

// DefaultTrajectoryFile is where the planning stack leaves the most
// recent trajectory.
const DefaultTrajectoryFile = "ow_lander_trajectory.txt"

// Interface wires the lander topics and services onto one node.
type Interface struct {
	node ros.Node
	bus  *telemetry.Bus
	ops  *operations

	joints map[string]jointInfo

	telemetryMutex sync.Mutex
	jointState     map[string]jointTelemetry
	panDegrees     float64
	tiltDegrees    float64
	imageReceived  bool

	faultMutex sync.Mutex
	hardTorque map[string]struct{}
	softTorque map[string]struct{}

	tiltPub         *latchedPublisher
	panPub          *latchedPublisher
	imageTriggerPub *latchedPublisher

	tiltStateSub   ros.Subscriber
	panStateSub    ros.Subscriber
	jointStatesSub ros.Subscriber
	imageSub       ros.Subscriber

	moveGuardedClient actionlib.SimpleActionClient
}

// New builds the interface on the given node. Torque limits come from
// the defaults unless the ~joint_limits parameter names an override
// file.
func New(node ros.Node, bus *telemetry.Bus) (*Interface, error) {
	joints := defaultJoints()
	if ok, err := node.HasParam("~joint_limits"); err == nil && ok {
		param, err := node.GetParam("~joint_limits")
		if err != nil {
			return nil, errors.Wrap(err, "read ~joint_limits")
		}
		path, ok := param.(string)
		if !ok {
			return nil, errors.Errorf("~joint_limits is not a path: %v", param)
		}
		if err := loadJointLimits(path, joints); err != nil {
			return nil, err
		}
	}

	iface := &Interface{
		node:       node,
		bus:        bus,
		ops:        newOperations(bus),
		joints:     joints,
		jointState: map[string]jointTelemetry{},
		hardTorque: map[string]struct{}{},
		softTorque: map[string]struct{}{},
	}

	iface.ops.register(OpMoveGuarded)
	iface.ops.register(OpStartPlanning)
	iface.ops.register(OpPublishTrajectory)
	iface.ops.register(OpMoveGuardedAction)

	// The antenna controllers and the camera may come up after this
	// node, so the command topics are latched.
	iface.tiltPub = newLatchedPublisher(node,
		"/ant_tilt_position_controller/command", std_msgs.MsgFloat64)
	iface.panPub = newLatchedPublisher(node,
		"/ant_pan_position_controller/command", std_msgs.MsgFloat64)
	iface.imageTriggerPub = newLatchedPublisher(node,
		"/StereoCamera/left/image_trigger", std_msgs.MsgEmpty)

	iface.tiltStateSub = node.NewSubscriber("/ant_tilt_position_controller/state",
		control_msgs.MsgJointControllerState, iface.tiltCallback)
	iface.panStateSub = node.NewSubscriber("/ant_pan_position_controller/state",
		control_msgs.MsgJointControllerState, iface.panCallback)
	iface.jointStatesSub = node.NewSubscriber("/joint_states",
		sensor_msgs.MsgJointState, iface.jointStatesCallback)
	iface.imageSub = node.NewSubscriber("/StereoCamera/left/image_raw",
		sensor_msgs.MsgImage, iface.imageCallback)

	iface.moveGuardedClient = actionlib.NewSimpleActionClient(node,
		"/MoveGuarded", ow_plexil.ActionMoveGuarded)

	return iface, nil
}

// SetStatusFunc registers the callback that acknowledges a finished
// command back to the executive.
func (iface *Interface) SetStatusFunc(fn StatusFunc) {
	iface.ops.setStatusFunc(fn)
}

// Shutdown tears down the interface's topics.
func (iface *Interface) Shutdown() {
	iface.tiltStateSub.Shutdown()
	iface.panStateSub.Shutdown()
	iface.jointStatesSub.Shutdown()
	iface.imageSub.Shutdown()
	iface.tiltPub.Shutdown()
	iface.panPub.Shutdown()
	iface.imageTriggerPub.Shutdown()
}

func (iface *Interface) tiltCallback(msg *control_msgs.JointControllerState) {
	degrees := msg.SetPoint * r2d
	iface.telemetryMutex.Lock()
	iface.tiltDegrees = degrees
	iface.telemetryMutex.Unlock()
	iface.bus.Publish("TiltDegrees", degrees)
}

func (iface *Interface) panCallback(msg *control_msgs.JointControllerState) {
	degrees := msg.SetPoint * r2d
	iface.telemetryMutex.Lock()
	iface.panDegrees = degrees
	iface.telemetryMutex.Unlock()
	iface.bus.Publish("PanDegrees", degrees)
}

// jointStatesCallback forwards joint telemetry to the bus and runs the
// joint fault checks.
func (iface *Interface) jointStatesCallback(msg *sensor_msgs.JointState) {
	for i, name := range msg.Name {
		info, ok := iface.joints[name]
		if !ok {
			log.Errorf("jointStatesCallback: unsupported joint %s", name)
			continue
		}
		var state jointTelemetry
		if i < len(msg.Position) {
			state.position = msg.Position[i]
		}
		if i < len(msg.Velocity) {
			state.velocity = msg.Velocity[i]
		}
		if i < len(msg.Effort) {
			state.effort = msg.Effort[i]
		}

		iface.telemetryMutex.Lock()
		iface.jointState[info.plexilName] = state
		iface.telemetryMutex.Unlock()

		iface.bus.Publish(info.plexilName+"Velocity", state.velocity)
		iface.bus.Publish(info.plexilName+"Effort", state.effort)
		iface.bus.Publish(info.plexilName+"Position", state.position)
		iface.checkTorque(info, state.effort)
	}
}

func (iface *Interface) imageCallback(msg *sensor_msgs.Image) {
	// The image itself is ignored; its receipt is what plans watch for.
	iface.telemetryMutex.Lock()
	iface.imageReceived = true
	iface.telemetryMutex.Unlock()
	iface.bus.Publish("ImageReceived", true)
}

// TiltAntenna points the antenna tilt joint at the given angle.
func (iface *Interface) TiltAntenna(degrees float64) {
	radians := degrees * d2r
	log.Infof("Tilting to %f degrees (%f radians)", degrees, radians)
	iface.tiltPub.Publish(&std_msgs.Float64{Data: radians})
}

// PanAntenna points the antenna pan joint at the given angle.
func (iface *Interface) PanAntenna(degrees float64) {
	radians := degrees * d2r
	log.Infof("Panning to %f degrees (%f radians)", degrees, radians)
	iface.panPub.Publish(&std_msgs.Float64{Data: radians})
}

// TakePicture triggers the left stereo camera. ImageReceived is reset
// so plans can wait for the new image to land.
func (iface *Interface) TakePicture() {
	iface.telemetryMutex.Lock()
	iface.imageReceived = false
	iface.telemetryMutex.Unlock()
	iface.bus.Publish("ImageReceived", false)
	iface.imageTriggerPub.Publish(&std_msgs.Empty{})
}

// DigTrench is accepted for plan compatibility; the simulator of this
// testbed has no trench service yet.
func (iface *Interface) DigTrench(x, y, z,
	depth, length, width, pitch, yaw,
	dumpX, dumpY, dumpZ float64) {
	log.Warn("digTrench is unimplemented!")
}

// StartPlanning opens a planning session in the planning stack.
func (iface *Interface) StartPlanning(id int, useDefaults bool,
	trenchX, trenchY, trenchD float64, deletePrevTraj bool) {
	const name = OpStartPlanning
	if !iface.ops.markRunning(name, id) {
		return
	}
	srv := new(ow_lander.StartPlanning)
	srv.Request.UseDefaults = useDefaults
	srv.Request.TrenchX = float32(trenchX)
	srv.Request.TrenchY = float32(trenchY)
	srv.Request.TrenchD = float32(trenchD)
	srv.Request.DeletePrevTraj = deletePrevTraj
	// NOTE: typo is deliberate
	client := iface.node.NewServiceClient("/planning/start_plannning_session",
		ow_lander.SrvStartPlanning)
	go iface.serviceCall(client, srv, name, id, func() (bool, string) {
		return srv.Response.Success, srv.Response.Message
	})
}

// MoveGuarded plans a guarded move toward the target point.
func (iface *Interface) MoveGuarded(id int,
	targetX, targetY, targetZ,
	normalX, normalY, normalZ,
	offsetDistance, overdriveDistance float64,
	deletePrevTraj, retract bool) {
	const name = OpMoveGuarded
	if !iface.ops.markRunning(name, id) {
		return
	}
	srv := new(ow_lander.MoveGuarded)
	srv.Request.UseDefaults = false
	srv.Request.TargetX = float32(targetX)
	srv.Request.TargetY = float32(targetY)
	srv.Request.TargetZ = float32(targetZ)
	srv.Request.SurfaceNormalX = float32(normalX)
	srv.Request.SurfaceNormalY = float32(normalY)
	srv.Request.SurfaceNormalZ = float32(normalZ)
	srv.Request.OffsetDistance = float32(offsetDistance)
	srv.Request.OverdriveDistance = float32(overdriveDistance)
	srv.Request.DeletePrevTraj = deletePrevTraj
	srv.Request.Retract = retract
	client := iface.node.NewServiceClient("/planning/start_move_guarded",
		ow_lander.SrvMoveGuarded)
	go iface.serviceCall(client, srv, name, id, func() (bool, string) {
		return srv.Response.Success, srv.Response.Message
	})
}

// PublishTrajectory replays a planned trajectory to the lander.
func (iface *Interface) PublishTrajectory(id int, useLatest bool, filename string) {
	const name = OpPublishTrajectory
	if !iface.ops.markRunning(name, id) {
		return
	}
	srv := new(ow_lander.PublishTrajectory)
	srv.Request.UseLatest = useLatest
	srv.Request.TrajectoryFilename = filename
	client := iface.node.NewServiceClient("/planning/publish_trajectory",
		ow_lander.SrvPublishTrajectory)
	go iface.serviceCall(client, srv, name, id, func() (bool, string) {
		return srv.Response.Success, srv.Response.Message
	})
}

// serviceCall issues the blocking call and settles the operation's
// bookkeeping. It runs in its own goroutine because Call blocks for
// the whole planning run.
func (iface *Interface) serviceCall(client ros.ServiceClient, srv ros.Service,
	name string, id int, response func() (bool, string)) {
	defer client.Shutdown()
	if err := client.Call(srv); err != nil {
		log.Errorf("Failed to call service %s: %v", name, err)
		iface.ops.markFinished(name, id, false)
		return
	}
	success, message := response()
	log.Infof("%s returned: %t, %s", name, success, message)
	iface.ops.markFinished(name, id, success)
}

// MoveGuardedAction runs the guarded move through the /MoveGuarded
// action server instead of the planning service.
func (iface *Interface) MoveGuardedAction(id int,
	targetX, targetY, targetZ,
	normalX, normalY, normalZ,
	offsetDistance, overdriveDistance float64,
	deletePrevTraj, retract bool) {
	const name = OpMoveGuardedAction
	if !iface.ops.markRunning(name, id) {
		return
	}
	goal := &ow_plexil.MoveGuardedGoal{
		UseDefaults:       false,
		TargetX:           targetX,
		TargetY:           targetY,
		TargetZ:           targetZ,
		SurfaceNormalX:    normalX,
		SurfaceNormalY:    normalY,
		SurfaceNormalZ:    normalZ,
		OffsetDistance:    offsetDistance,
		OverdriveDistance: overdriveDistance,
		DeletePrevTraj:    deletePrevTraj,
		Retract:           retract,
	}
	go iface.actionCall(goal, name, id)
}

func (iface *Interface) actionCall(goal *ow_plexil.MoveGuardedGoal, name string, id int) {
	client := iface.moveGuardedClient
	if !client.WaitForServer(ros.NewDuration(0, 0)) {
		log.Errorf("%s action server never came up", name)
		iface.ops.markFinished(name, id, false)
		return
	}
	feedback := func(fb *ow_plexil.MoveGuardedFeedback) {
		log.Debugf("%s feedback: x=%f y=%f z=%f", name, fb.CurrentX, fb.CurrentY, fb.CurrentZ)
	}
	client.SendGoal(goal, nil, nil, feedback)
	client.WaitForResult(ros.NewDuration(0, 0))

	status, err := client.GetState()
	if err != nil {
		log.Errorf("%s finished without a readable status: %v", name, err)
		iface.ops.markFinished(name, id, false)
		return
	}
	var message string
	if result, err := client.GetResult(); err == nil {
		if res, ok := result.(*ow_plexil.MoveGuardedResult); ok {
			message = res.Message
		}
	}
	success := status == actionlib_msgs.SUCCEEDED
	log.Infof("%s returned: %t, %s", name, success, message)
	iface.ops.markFinished(name, id, success)
}

// Tilt reports the last antenna tilt set point in degrees.
func (iface *Interface) Tilt() float64 {
	iface.telemetryMutex.Lock()
	defer iface.telemetryMutex.Unlock()
	return iface.tiltDegrees
}

// PanDegrees reports the last antenna pan set point in degrees.
func (iface *Interface) PanDegrees() float64 {
	iface.telemetryMutex.Lock()
	defer iface.telemetryMutex.Unlock()
	return iface.panDegrees
}

func (iface *Interface) jointVelocity(plexilName string) float64 {
	iface.telemetryMutex.Lock()
	defer iface.telemetryMutex.Unlock()
	return iface.jointState[plexilName].velocity
}

// PanVelocity reports the antenna pan joint velocity.
func (iface *Interface) PanVelocity() float64 {
	return iface.jointVelocity("AntennaPan")
}

// TiltVelocity reports the antenna tilt joint velocity.
func (iface *Interface) TiltVelocity() float64 {
	return iface.jointVelocity("AntennaTilt")
}

// ImageReceived reports whether an image arrived since the last
// TakePicture.
func (iface *Interface) ImageReceived() bool {
	iface.telemetryMutex.Lock()
	defer iface.telemetryMutex.Unlock()
	return iface.imageReceived
}

// Running reports whether the named operation is in flight.
func (iface *Interface) Running(name string) bool {
	running, known := iface.ops.runningState(name)
	if !known {
		log.Errorf("Running: unsupported operation: %s", name)
		return false
	}
	return running
}

// Finished reports whether the named operation is settled.
func (iface *Interface) Finished(name string) bool {
	running, known := iface.ops.runningState(name)
	if !known {
		log.Errorf("Finished: unsupported operation: %s", name)
		return false
	}
	return !running
}
