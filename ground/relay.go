// Package ground relays ground-control traffic: JSON uplinks become
// PlannerCommand messages for the plan selection node, and a
// once-a-second downlink point reports how the relay is doing.
package ground

import (
	"sync"
	"time"

	"github.com/MilanAdd/ow-autonomy/msgs/geometry_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/ow_plexil"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/buger/jsonparser"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "ground"})

// Relay owns the ground-control topics on one node.
type Relay struct {
	node ros.Node
	bus  *telemetry.Bus

	mutex    sync.Mutex
	accepted int
	rejected int

	commandPub ros.Publisher
	fwdPub     ros.Publisher
	messageSub ros.Subscriber
}

// New wires the uplink and downlink topics on node.
func New(node ros.Node, bus *telemetry.Bus) *Relay {
	r := &Relay{node: node, bus: bus}
	r.commandPub = node.NewPublisher("/plexil_plan_selection_commands", ow_plexil.MsgPlannerCommand)
	r.fwdPub = node.NewPublisher("/GroundControl/fwd_link", geometry_msgs.MsgPoint)
	r.messageSub = node.NewSubscriber("/GroundControl/message", std_msgs.MsgString, r.messageCallback)
	return r
}

// Run drives the node: process uplinks and publish the downlink point
// once a second until the node shuts down.
func (r *Relay) Run() {
	for r.node.OK() {
		r.node.SpinOnce()
		r.publishLink()
		time.Sleep(time.Second)
	}
}

// Shutdown tears down the relay topics.
func (r *Relay) Shutdown() {
	r.messageSub.Shutdown()
	r.commandPub.Shutdown()
	r.fwdPub.Shutdown()
}

func (r *Relay) messageCallback(msg *std_msgs.String) {
	log.Infof("GroundControl: Received message, [%s].", msg.Data)

	command, plans, err := parseUplink([]byte(msg.Data))
	if err != nil {
		log.Errorf("dropping uplink: %v", err)
		r.count(false)
		return
	}

	r.commandPub.Publish(&ow_plexil.PlannerCommand{Command: command, Plans: plans})
	r.bus.Publish("MessageReceived", true)
	r.count(true)
}

func (r *Relay) count(accepted bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if accepted {
		r.accepted++
	} else {
		r.rejected++
	}
}

// publishLink reports the uplink counters on the forward link: x
// accepted, y rejected.
func (r *Relay) publishLink() {
	r.mutex.Lock()
	accepted, rejected := r.accepted, r.rejected
	r.mutex.Unlock()
	r.fwdPub.Publish(&geometry_msgs.Point{X: float64(accepted), Y: float64(rejected)})
}

// parseUplink decodes a ground uplink, e.g.
// {"command": "ADD", "plans": ["Demo1", "Demo2"]}. The plans array is
// optional.
func parseUplink(data []byte) (string, []string, error) {
	command, err := jsonparser.GetString(data, "command")
	if err != nil {
		return "", nil, errors.Wrap(err, "uplink command")
	}

	var plans []string
	var planErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if planErr != nil {
			return
		}
		if err != nil {
			planErr = err
			return
		}
		if dataType != jsonparser.String {
			planErr = errors.Errorf("plan %d is a JSON %s", len(plans), dataType)
			return
		}
		v, err := jsonparser.ParseString(value)
		if err != nil {
			planErr = err
			return
		}
		plans = append(plans, v)
	}, "plans")
	if planErr != nil {
		return "", nil, errors.Wrap(planErr, "uplink plans")
	}
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return "", nil, errors.Wrap(err, "uplink plans")
	}
	return command, plans, nil
}
