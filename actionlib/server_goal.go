package actionlib

import (
	"sync"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

// serverGoalHandle pairs one received goal with its state machine and
// moves it through the protocol on behalf of the owning server.
type serverGoalHandle struct {
	server     *actionServer
	sm         *serverStateMachine
	actionGoal ActionGoal

	mutex           sync.Mutex
	destructionTime ros.Time
}

func newServerGoalHandle(server *actionServer, goal ActionGoal) *serverGoalHandle {
	return &serverGoalHandle{
		server:     server,
		sm:         newServerStateMachine(goal.GetGoalId()),
		actionGoal: goal,
	}
}

func (gh *serverGoalHandle) SetAccepted(text string) error {
	if _, err := gh.sm.transition(eventAccept, text); err != nil {
		return err
	}
	gh.server.PublishStatus()
	return nil
}

func (gh *serverGoalHandle) SetCancelled(result ros.Message, text string) error {
	status, err := gh.sm.transition(eventCancel, text)
	if err != nil {
		return err
	}
	gh.SetHandlerDestructionTime(ros.Now())
	gh.server.PublishResult(status, result)
	return nil
}

func (gh *serverGoalHandle) SetRejected(result ros.Message, text string) error {
	status, err := gh.sm.transition(eventReject, text)
	if err != nil {
		return err
	}
	gh.SetHandlerDestructionTime(ros.Now())
	gh.server.PublishResult(status, result)
	return nil
}

func (gh *serverGoalHandle) SetAborted(result ros.Message, text string) error {
	status, err := gh.sm.transition(eventAbort, text)
	if err != nil {
		return err
	}
	gh.SetHandlerDestructionTime(ros.Now())
	gh.server.PublishResult(status, result)
	return nil
}

func (gh *serverGoalHandle) SetSucceeded(result ros.Message, text string) error {
	status, err := gh.sm.transition(eventSucceed, text)
	if err != nil {
		return err
	}
	gh.SetHandlerDestructionTime(ros.Now())
	gh.server.PublishResult(status, result)
	return nil
}

// SetCancelRequested asks a live goal to stop. It reports false when
// the goal has already finished or is already being cancelled.
func (gh *serverGoalHandle) SetCancelRequested() bool {
	if _, live := serverTransitions[gh.sm.getStatus().Status]; !live {
		return false
	}
	if _, err := gh.sm.transition(eventCancelRequest, "cancel requested"); err != nil {
		return false
	}
	gh.server.PublishStatus()
	return true
}

func (gh *serverGoalHandle) PublishFeedback(feedback ros.Message) {
	gh.server.PublishFeedback(gh.sm.getStatus(), feedback)
}

func (gh *serverGoalHandle) GetGoal() ros.Message {
	return gh.actionGoal.GetGoal()
}

func (gh *serverGoalHandle) GetGoalId() actionlib_msgs.GoalID {
	return gh.actionGoal.GetGoalId()
}

func (gh *serverGoalHandle) GetGoalStatus() actionlib_msgs.GoalStatus {
	return gh.sm.getStatus()
}

func (gh *serverGoalHandle) Equal(other ServerGoalHandler) bool {
	if other == nil {
		return false
	}
	return gh.GetGoalId().Id == other.GetGoalId().Id
}

func (gh *serverGoalHandle) GetHandlerDestructionTime() ros.Time {
	gh.mutex.Lock()
	defer gh.mutex.Unlock()
	return gh.destructionTime
}

func (gh *serverGoalHandle) SetHandlerDestructionTime(t ros.Time) {
	gh.mutex.Lock()
	defer gh.mutex.Unlock()
	gh.destructionTime = t
}
