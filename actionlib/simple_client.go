package actionlib

import (
	"fmt"
	"sync"
	"time"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

type simpleGoalState uint8

const (
	simpleStatePending simpleGoalState = iota
	simpleStateActive
	simpleStateDone
)

// simpleClient tracks a single goal at a time on top of actionClient.
// Sending a new goal drops the previous one from tracking.
type simpleClient struct {
	node   ros.Node
	client *actionClient
	logger ros.Logger

	mutex    sync.Mutex
	gh       ClientGoalHandler
	state    simpleGoalState
	doneChan chan struct{}

	doneCb     interface{}
	activeCb   interface{}
	feedbackCb interface{}
}

func newSimpleClient(node ros.Node, action string, actionType ActionType) *simpleClient {
	return &simpleClient{
		node:   node,
		client: newActionClient(node, action, actionType),
		logger: node.Logger(),
	}
}

func (sc *simpleClient) WaitForServer(timeout ros.Duration) bool {
	return sc.client.WaitForServer(timeout)
}

// SendGoal ships a goal to the server. doneCb runs once with the final
// status and result, activeCb when the server starts the goal,
// feedbackCb on every feedback message. Any of them may be nil.
func (sc *simpleClient) SendGoal(goal ros.Message, doneCb, activeCb, feedbackCb interface{}) {
	sc.StopTrackingGoal()

	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.doneCb = doneCb
	sc.activeCb = activeCb
	sc.feedbackCb = feedbackCb
	sc.state = simpleStatePending
	sc.doneChan = make(chan struct{})
	sc.gh = sc.client.SendGoal(goal, sc.handleTransition, sc.handleFeedback)
}

// SendGoalAndWait runs a goal to completion, cancelling it if it takes
// longer than executeTimeout. Zero timeouts wait forever.
func (sc *simpleClient) SendGoalAndWait(goal ros.Message, executeTimeout, preemptTimeout ros.Duration) (uint8, error) {
	sc.SendGoal(goal, nil, nil, nil)
	if sc.WaitForResult(executeTimeout) {
		return sc.GetState()
	}

	sc.logger.Debug("goal did not finish in time, cancelling it")
	if err := sc.CancelGoal(); err != nil {
		return actionlib_msgs.LOST, err
	}
	if sc.WaitForResult(preemptTimeout) {
		sc.logger.Debug("goal finished within the preempt timeout")
	} else {
		sc.logger.Warn("goal did not finish within the preempt timeout")
	}
	return sc.GetState()
}

// WaitForResult blocks until the tracked goal finishes. A zero timeout
// waits forever. It reports false on timeout or when no goal is live.
func (sc *simpleClient) WaitForResult(timeout ros.Duration) bool {
	sc.mutex.Lock()
	gh := sc.gh
	done := sc.doneChan
	sc.mutex.Unlock()

	if gh == nil {
		sc.logger.Error("asked to wait for a result with no goal in flight")
		return false
	}
	if timeout.IsZero() {
		<-done
		return true
	}
	select {
	case <-done:
		return true
	case <-time.After(time.Duration(timeout.ToNSec())):
		return false
	}
}

func (sc *simpleClient) GetResult() (ros.Message, error) {
	gh := sc.currentHandler()
	if gh == nil {
		return nil, fmt.Errorf("no goal is being tracked")
	}
	return gh.GetResult()
}

// GetState reports the tracked goal's status in actionlib_msgs terms.
func (sc *simpleClient) GetState() (uint8, error) {
	gh := sc.currentHandler()
	if gh == nil {
		return actionlib_msgs.LOST, fmt.Errorf("no goal is being tracked")
	}
	commState, err := gh.GetCommState()
	if err != nil {
		return actionlib_msgs.LOST, err
	}
	switch commState {
	case WaitingForGoalAck, Pending, Recalling:
		return actionlib_msgs.PENDING, nil
	case Active, Preempting:
		return actionlib_msgs.ACTIVE, nil
	case Done:
		return gh.GetTerminalState()
	default: // WaitingForResult, WaitingForCancelAck
		return gh.GetGoalStatus()
	}
}

func (sc *simpleClient) GetGoalStatusText() (string, error) {
	gh := sc.currentHandler()
	if gh == nil {
		return "", fmt.Errorf("no goal is being tracked")
	}
	return gh.GetGoalStatusText()
}

func (sc *simpleClient) CancelGoal() error {
	gh := sc.currentHandler()
	if gh == nil {
		return fmt.Errorf("no goal is being tracked")
	}
	return gh.Cancel()
}

func (sc *simpleClient) CancelAllGoals() {
	sc.client.CancelAllGoals()
}

func (sc *simpleClient) StopTrackingGoal() {
	sc.mutex.Lock()
	gh := sc.gh
	sc.gh = nil
	sc.mutex.Unlock()

	if gh != nil {
		sc.client.deleteGoalHandler(gh.(*clientGoalHandler))
	}
}

func (sc *simpleClient) currentHandler() ClientGoalHandler {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.gh
}

func (sc *simpleClient) handleTransition(gh ClientGoalHandler) {
	sc.mutex.Lock()
	current := sc.gh
	sc.mutex.Unlock()
	if current == nil || gh != current {
		return
	}

	commState, err := gh.GetCommState()
	if err != nil {
		sc.logger.Error(err)
		return
	}

	switch commState {
	case WaitingForGoalAck, WaitingForResult, WaitingForCancelAck:
		// nothing to surface

	case Pending, Recalling:
		if sc.simpleState() != simpleStatePending {
			sc.logger.Errorf("goal moved to comm state %v while past the pending phase", commState)
		}

	case Active, Preempting:
		switch sc.simpleState() {
		case simpleStatePending:
			sc.setSimpleState(simpleStateActive)
			sc.runCallback(sc.activeCb)
		case simpleStateDone:
			sc.logger.Errorf("goal moved to comm state %v after it was done", commState)
		}

	case Done:
		if sc.simpleState() == simpleStateDone {
			sc.logger.Error("goal reached the DONE comm state twice")
			return
		}
		status, err := gh.GetGoalStatus()
		if err != nil {
			sc.logger.Error(err)
			return
		}
		result, err := gh.GetResult()
		if err != nil {
			result = sc.client.actionType.ResultType().NewMessage().(ActionResult).GetResult()
		}
		sc.setSimpleState(simpleStateDone)
		sc.runCallback(sc.doneCb, status, result)
		sc.mutex.Lock()
		done := sc.doneChan
		sc.mutex.Unlock()
		close(done)
	}
}

func (sc *simpleClient) handleFeedback(gh ClientGoalHandler, feedback ros.Message) {
	sc.mutex.Lock()
	current := sc.gh
	feedbackCb := sc.feedbackCb
	sc.mutex.Unlock()
	if current == nil || gh != current {
		return
	}
	sc.runCallback(feedbackCb, feedback)
}

func (sc *simpleClient) simpleState() simpleGoalState {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.state
}

func (sc *simpleClient) setSimpleState(state simpleGoalState) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	sc.state = state
}

func (sc *simpleClient) runCallback(callback interface{}, args ...interface{}) {
	if err := invoke(callback, args...); err != nil {
		sc.logger.Error(err)
	}
}
