package actionlib

import (
	"fmt"
	"sync"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

// clientGoalHandler follows one goal from send to result on behalf of
// the owning client.
type clientGoalHandler struct {
	client       *actionClient
	sm           *clientStateMachine
	actionGoal   ActionGoal
	transitionCb interface{}
	feedbackCb   interface{}

	mutex        sync.RWMutex
	latestStatus actionlib_msgs.GoalStatus
	latestResult ActionResult
	expired      bool
}

func newClientGoalHandler(client *actionClient, goal ActionGoal, transitionCb, feedbackCb interface{}) *clientGoalHandler {
	return &clientGoalHandler{
		client:       client,
		sm:           newClientStateMachine(),
		actionGoal:   goal,
		transitionCb: transitionCb,
		feedbackCb:   feedbackCb,
		latestStatus: actionlib_msgs.GoalStatus{
			GoalId: goal.GetGoalId(),
			Status: actionlib_msgs.PENDING,
		},
	}
}

func (gh *clientGoalHandler) IsExpired() bool {
	gh.mutex.RLock()
	defer gh.mutex.RUnlock()
	return gh.expired
}

func (gh *clientGoalHandler) markExpired() {
	gh.mutex.Lock()
	defer gh.mutex.Unlock()
	gh.expired = true
}

func (gh *clientGoalHandler) GetCommState() (CommState, error) {
	if gh.IsExpired() {
		return Lost, fmt.Errorf("goal handler is no longer tracked")
	}
	return gh.sm.getState(), nil
}

func (gh *clientGoalHandler) GetGoalStatus() (uint8, error) {
	if gh.IsExpired() {
		return actionlib_msgs.LOST, fmt.Errorf("goal handler is no longer tracked")
	}
	gh.mutex.RLock()
	defer gh.mutex.RUnlock()
	return gh.latestStatus.Status, nil
}

func (gh *clientGoalHandler) GetGoalStatusText() (string, error) {
	if gh.IsExpired() {
		return "", fmt.Errorf("goal handler is no longer tracked")
	}
	gh.mutex.RLock()
	defer gh.mutex.RUnlock()
	return gh.latestStatus.Text, nil
}

// GetTerminalState reports how the goal ended. It is only meaningful
// once the goal reaches the DONE comm state.
func (gh *clientGoalHandler) GetTerminalState() (uint8, error) {
	if gh.IsExpired() {
		return actionlib_msgs.LOST, fmt.Errorf("goal handler is no longer tracked")
	}
	if state := gh.sm.getState(); state != Done {
		return actionlib_msgs.LOST, fmt.Errorf("goal is still in comm state %v", state)
	}

	gh.mutex.RLock()
	defer gh.mutex.RUnlock()
	switch gh.latestStatus.Status {
	case actionlib_msgs.PREEMPTED, actionlib_msgs.SUCCEEDED, actionlib_msgs.ABORTED,
		actionlib_msgs.REJECTED, actionlib_msgs.RECALLED:
		return gh.latestStatus.Status, nil
	}
	return actionlib_msgs.LOST, nil
}

func (gh *clientGoalHandler) GetResult() (ros.Message, error) {
	if gh.IsExpired() {
		return nil, fmt.Errorf("goal handler is no longer tracked")
	}
	gh.mutex.RLock()
	defer gh.mutex.RUnlock()
	if gh.latestResult == nil {
		return nil, fmt.Errorf("no result received for goal %s", gh.actionGoal.GetGoalId().Id)
	}
	return gh.latestResult.GetResult(), nil
}

func (gh *clientGoalHandler) Resend() error {
	if gh.IsExpired() {
		return fmt.Errorf("goal handler is no longer tracked")
	}
	gh.client.goalPub.Publish(gh.actionGoal)
	return nil
}

// Cancel asks the server to stop the goal. Requests arriving after the
// goal already started winding down are ignored.
func (gh *clientGoalHandler) Cancel() error {
	if gh.IsExpired() {
		return fmt.Errorf("goal handler is no longer tracked")
	}

	switch state := gh.sm.getState(); state {
	case WaitingForResult, Recalling, Preempting, Done:
		gh.client.node.Logger().Debugf("ignoring cancel request in comm state %v", state)
		return nil
	}

	gh.client.cancelPub.Publish(&actionlib_msgs.GoalID{Id: gh.actionGoal.GetGoalId().Id})
	gh.transitionTo(WaitingForCancelAck)
	return nil
}

func (gh *clientGoalHandler) transitionTo(state CommState) {
	gh.sm.setState(state)
	if err := invoke(gh.transitionCb, ClientGoalHandler(gh)); err != nil {
		gh.client.node.Logger().Error(err)
	}
}

// markLost finishes a goal that vanished from the server status list.
func (gh *clientGoalHandler) markLost() {
	gh.mutex.Lock()
	gh.latestStatus.Status = actionlib_msgs.LOST
	gh.latestStatus.Text = "goal vanished from the server status list"
	gh.mutex.Unlock()
	gh.transitionTo(Done)
}

func (gh *clientGoalHandler) updateStatus(status actionlib_msgs.GoalStatus, found bool) error {
	state := gh.sm.getState()
	if state == Done {
		return nil
	}

	if !found {
		if state != WaitingForGoalAck && state != WaitingForResult {
			gh.markLost()
		}
		return nil
	}

	gh.mutex.Lock()
	gh.latestStatus = status
	gh.mutex.Unlock()

	steps, err := gh.sm.transitionsFor(status.Status)
	if err != nil {
		return fmt.Errorf("goal %s: %v", gh.actionGoal.GetGoalId().Id, err)
	}
	for _, next := range steps {
		gh.transitionTo(next)
	}
	return nil
}

func (gh *clientGoalHandler) updateResult(result ActionResult) error {
	if gh.sm.getState() == Done {
		return fmt.Errorf("received a second result for goal %s", gh.actionGoal.GetGoalId().Id)
	}

	gh.mutex.Lock()
	gh.latestStatus = result.GetStatus()
	gh.latestResult = result
	gh.mutex.Unlock()

	if steps, err := gh.sm.transitionsFor(result.GetStatus().Status); err == nil {
		for _, next := range steps {
			gh.transitionTo(next)
		}
	} else {
		gh.client.node.Logger().Error(err)
	}
	gh.transitionTo(Done)
	return nil
}

func (gh *clientGoalHandler) updateFeedback(feedback ActionFeedback) {
	if gh.IsExpired() || gh.sm.getState() == Done {
		return
	}
	if err := invoke(gh.feedbackCb, ClientGoalHandler(gh), feedback.GetFeedback()); err != nil {
		gh.client.node.Logger().Error(err)
	}
}
