// Package planselect queues and dispatches PLEXIL plans. It listens
// for PlannerCommand messages, feeds plans to the executive one at a
// time, and reports every transition on the status topic.
package planselect

import (
	"sync"
	"time"

	"github.com/MilanAdd/ow-autonomy/msgs/ow_plexil"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/MilanAdd/ow-autonomy/plexil"
	"github.com/edwinhayes/rosgo/ros"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "planselect"})

// Selection is the plan selection node logic: a plan queue, the
// executive that runs one plan at a time, and the command/status
// topics that ground control drives it with.
type Selection struct {
	node       ros.Node
	executive  plexil.Executive
	adapter    *plexil.Adapter
	configPath string

	mutex   sync.Mutex
	queue   []string
	current string
	paused  bool
	first   bool
	nextID  int
	pending map[int]string

	statusPub  ros.Publisher
	commandSub ros.Subscriber
}

// New wires the plan selection topics on node. configPath is handed
// to the executive when the first plan is dispatched; initialPlan
// ("None" or empty for none) is queued immediately.
func New(node ros.Node, executive plexil.Executive, adapter *plexil.Adapter, configPath, initialPlan string) *Selection {
	s := &Selection{
		node:       node,
		executive:  executive,
		adapter:    adapter,
		configPath: configPath,
		first:      true,
		pending:    map[int]string{},
	}
	s.statusPub = node.NewPublisher("/plexil_plan_selection_status", std_msgs.MsgString)
	s.commandSub = node.NewSubscriber("/plexil_plan_selection_commands",
		ow_plexil.MsgPlannerCommand, s.commandCallback)

	if initialPlan != "" && initialPlan != "None" {
		s.addPlans([]string{initialPlan})
	}
	return s
}

// Run drives the node: process callbacks, dispatch plans, once a
// second until the node shuts down.
func (s *Selection) Run() {
	for s.node.OK() {
		s.node.SpinOnce()
		s.step()
		time.Sleep(time.Second)
	}
}

// Shutdown tears down the selection topics.
func (s *Selection) Shutdown() {
	s.commandSub.Shutdown()
	s.statusPub.Shutdown()
}

// step runs one control-loop iteration: settle the plan in flight if
// it finished, then dispatch the next queued plan unless paused.
func (s *Selection) step() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.current != "" && s.executive.AllPlansFinished() {
		if s.executive.LastPlanSucceeded() {
			s.publishStatus(s.current + ":complete")
		} else {
			s.publishStatus(s.current + ":failed")
		}
		s.current = ""
	}

	if s.paused || s.current != "" || len(s.queue) == 0 {
		return
	}

	plan := s.queue[0]
	s.queue = s.queue[1:]

	if s.first {
		if err := s.executive.Initialize(s.configPath); err != nil {
			log.Errorf("initializing executive: %v", err)
			s.publishStatus(plan + ":failed")
			return
		}
		s.first = false
	}

	if err := s.executive.RunPlan(plan); err != nil {
		log.Errorf("running plan %s: %v", plan, err)
		s.publishStatus(plan + ":failed")
		return
	}
	s.current = plan
	s.publishStatus(plan + ":executing")
}

func (s *Selection) commandCallback(msg *ow_plexil.PlannerCommand) {
	switch msg.Command {
	case "ADD":
		s.addPlans(msg.Plans)
	case "PAUSE":
		s.setPaused(true)
		log.Info("plan dispatch paused")
	case "RESUME":
		s.setPaused(false)
		log.Info("plan dispatch resumed")
	case "RESET":
		s.reset()
	case "EXECUTE":
		s.execute(msg.Plans)
	default:
		log.Errorf("unknown plan selection command %s", msg.Command)
		s.publishStatus(msg.Command + ":unknown")
	}
}

func (s *Selection) addPlans(plans []string) {
	s.mutex.Lock()
	s.queue = append(s.queue, plans...)
	s.mutex.Unlock()
	for _, plan := range plans {
		s.publishStatus(plan + ":queued")
	}
}

func (s *Selection) setPaused(paused bool) {
	s.mutex.Lock()
	s.paused = paused
	s.mutex.Unlock()
}

// reset drops the queued plans. The plan in flight keeps running; the
// executive owns its process.
func (s *Selection) reset() {
	s.mutex.Lock()
	dropped := len(s.queue)
	s.queue = nil
	s.mutex.Unlock()
	log.Infof("dropped %d queued plans", dropped)
}

func (s *Selection) publishStatus(status string) {
	s.statusPub.Publish(&std_msgs.String{Data: status})
}
