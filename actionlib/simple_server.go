package actionlib

import (
	"fmt"
	"sync"
	"time"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

// simpleServer serves one goal at a time: a newer goal preempts the
// goal in flight, older goals are refused outright.
type simpleServer struct {
	node   ros.Node
	server *actionServer

	goalMutex             sync.Mutex
	currentGoal           ServerGoalHandler
	nextGoal              ServerGoalHandler
	newGoal               bool
	preemptRequest        bool
	newGoalPreemptRequest bool

	goalCallback    interface{}
	preemptCallback interface{}
	executeCallback interface{}

	executeChan  chan struct{}
	shutdownChan chan struct{}
}

func newSimpleServer(node ros.Node, action string, actionType ActionType, executeCb interface{}) *simpleServer {
	ss := &simpleServer{
		node:            node,
		executeCallback: executeCb,
		executeChan:     make(chan struct{}, 1),
		shutdownChan:    make(chan struct{}),
	}
	ss.server = newActionServer(node, action, actionType, ss.internalGoalCallback, ss.internalPreemptCallback)
	return ss
}

// Start launches the protocol machinery and returns immediately. The
// caller keeps the node spinning so callbacks get delivered.
func (ss *simpleServer) Start() {
	if ss.executeCallback != nil {
		go ss.goalExecutor()
	}
	go ss.server.Start()
}

func (ss *simpleServer) IsNewGoalAvailable() bool {
	ss.goalMutex.Lock()
	defer ss.goalMutex.Unlock()
	return ss.newGoal
}

func (ss *simpleServer) IsPreemptRequested() bool {
	ss.goalMutex.Lock()
	defer ss.goalMutex.Unlock()
	return ss.preemptRequest
}

func (ss *simpleServer) IsActive() bool {
	ss.goalMutex.Lock()
	defer ss.goalMutex.Unlock()
	return ss.isActiveLocked()
}

// caller holds goalMutex
func (ss *simpleServer) isActiveLocked() bool {
	if ss.currentGoal == nil {
		return false
	}
	status := ss.currentGoal.GetGoalStatus().Status
	return status == actionlib_msgs.ACTIVE || status == actionlib_msgs.PREEMPTING
}

// AcceptNewGoal makes the pending goal current, cancelling the goal it
// replaces, and returns the accepted goal message.
func (ss *simpleServer) AcceptNewGoal() (ros.Message, error) {
	ss.goalMutex.Lock()
	if !ss.newGoal || ss.nextGoal == nil {
		ss.goalMutex.Unlock()
		return nil, fmt.Errorf("no new goal is available to accept")
	}

	var superseded ServerGoalHandler
	if ss.isActiveLocked() && !ss.currentGoal.Equal(ss.nextGoal) {
		superseded = ss.currentGoal
	}
	ss.currentGoal = ss.nextGoal
	ss.newGoal = false
	ss.preemptRequest = ss.newGoalPreemptRequest
	ss.newGoalPreemptRequest = false
	current := ss.currentGoal
	ss.goalMutex.Unlock()

	if superseded != nil {
		if err := superseded.SetCancelled(ss.GetDefaultResult(), "goal preempted by a new goal"); err != nil {
			ss.node.Logger().Error(err)
		}
	}
	if err := current.SetAccepted("goal accepted by the simple action server"); err != nil {
		return nil, err
	}
	return current.GetGoal(), nil
}

func (ss *simpleServer) SetSucceeded(result ros.Message, text string) error {
	current := ss.getCurrentGoal()
	if current == nil {
		return fmt.Errorf("no goal is being tracked")
	}
	if result == nil {
		result = ss.GetDefaultResult()
	}
	return current.SetSucceeded(result, text)
}

func (ss *simpleServer) SetAborted(result ros.Message, text string) error {
	current := ss.getCurrentGoal()
	if current == nil {
		return fmt.Errorf("no goal is being tracked")
	}
	if result == nil {
		result = ss.GetDefaultResult()
	}
	return current.SetAborted(result, text)
}

func (ss *simpleServer) SetPreempted(result ros.Message, text string) error {
	current := ss.getCurrentGoal()
	if current == nil {
		return fmt.Errorf("no goal is being tracked")
	}
	if result == nil {
		result = ss.GetDefaultResult()
	}
	return current.SetCancelled(result, text)
}

func (ss *simpleServer) PublishFeedback(feedback ros.Message) {
	current := ss.getCurrentGoal()
	if current == nil {
		return
	}
	current.PublishFeedback(feedback)
}

func (ss *simpleServer) GetDefaultResult() ros.Message {
	return ss.server.actionType.ResultType().NewMessage().(ActionResult).GetResult()
}

func (ss *simpleServer) RegisterGoalCallback(callback interface{}) error {
	if ss.executeCallback != nil {
		return fmt.Errorf("cannot register a goal callback when an execute callback is in use")
	}
	ss.goalCallback = callback
	return nil
}

func (ss *simpleServer) RegisterPreemptCallback(callback interface{}) {
	ss.preemptCallback = callback
}

func (ss *simpleServer) getCurrentGoal() ServerGoalHandler {
	ss.goalMutex.Lock()
	defer ss.goalMutex.Unlock()
	return ss.currentGoal
}

func (ss *simpleServer) internalGoalCallback(gh ServerGoalHandler) {
	ss.goalMutex.Lock()

	stamp := gh.GetGoalId().Stamp
	if !ss.acceptableLocked(stamp) {
		ss.goalMutex.Unlock()
		if err := gh.SetCancelled(ss.GetDefaultResult(), "goal superseded by a newer goal"); err != nil {
			ss.node.Logger().Error(err)
		}
		return
	}

	var bumped ServerGoalHandler
	if ss.nextGoal != nil && (ss.currentGoal == nil || !ss.nextGoal.Equal(ss.currentGoal)) {
		bumped = ss.nextGoal
	}
	ss.nextGoal = gh
	ss.newGoal = true
	ss.newGoalPreemptRequest = false

	preempting := ss.isActiveLocked()
	if preempting {
		ss.preemptRequest = true
	}
	ss.goalMutex.Unlock()

	if bumped != nil {
		if err := bumped.SetCancelled(ss.GetDefaultResult(), "goal superseded by a newer goal"); err != nil {
			ss.node.Logger().Error(err)
		}
	}
	if preempting {
		if err := invoke(ss.preemptCallback); err != nil {
			ss.node.Logger().Error(err)
		}
	}
	if err := invoke(ss.goalCallback); err != nil {
		ss.node.Logger().Error(err)
	}

	select {
	case ss.executeChan <- struct{}{}:
	default:
	}
}

// caller holds goalMutex; a goal older than what the server is already
// holding loses.
func (ss *simpleServer) acceptableLocked(stamp ros.Time) bool {
	if ss.currentGoal != nil {
		currentStamp := ss.currentGoal.GetGoalId().Stamp
		if stamp.Cmp(currentStamp) < 0 {
			return false
		}
	}
	if ss.nextGoal != nil {
		nextStamp := ss.nextGoal.GetGoalId().Stamp
		if stamp.Cmp(nextStamp) < 0 {
			return false
		}
	}
	return true
}

func (ss *simpleServer) internalPreemptCallback(gh ServerGoalHandler) {
	ss.goalMutex.Lock()
	var firePreempt bool
	if ss.currentGoal != nil && gh.Equal(ss.currentGoal) {
		ss.preemptRequest = true
		firePreempt = true
	} else if ss.nextGoal != nil && gh.Equal(ss.nextGoal) {
		ss.newGoalPreemptRequest = true
	}
	ss.goalMutex.Unlock()

	if firePreempt {
		if err := invoke(ss.preemptCallback); err != nil {
			ss.node.Logger().Error(err)
		}
	}
}

// goalExecutor feeds accepted goals to the execute callback, one at a
// time, waking on new goals and once a second as a fallback.
func (ss *simpleServer) goalExecutor() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ss.shutdownChan:
			return
		case <-ss.executeChan:
		case <-ticker.C:
		}

		if ss.IsActive() {
			ss.node.Logger().Error("simple action server executor woke with a goal still active")
			continue
		}
		if !ss.IsNewGoalAvailable() {
			continue
		}

		goal, err := ss.AcceptNewGoal()
		if err != nil {
			ss.node.Logger().Error(err)
			continue
		}
		if err := invoke(ss.executeCallback, goal); err != nil {
			ss.node.Logger().Error(err)
		}
		if ss.IsActive() {
			ss.node.Logger().Warn("execute callback returned without finishing the goal, aborting it")
			if err := ss.SetAborted(nil, "execute callback did not set a terminal status"); err != nil {
				ss.node.Logger().Error(err)
			}
		}
	}
}
