package actionlib

import (
	"fmt"
	"sync"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

// actionClient sends goals into one action namespace and routes the
// status, feedback and result streams back to their goal handlers.
type actionClient struct {
	node       ros.Node
	action     string
	actionType ActionType

	goalPub     ros.Publisher
	cancelPub   ros.Publisher
	statusSub   ros.Subscriber
	resultSub   ros.Subscriber
	feedbackSub ros.Subscriber

	idGen *goalIDGenerator

	handlersMutex  sync.RWMutex
	handlers       map[string]*clientGoalHandler
	statusReceived bool
	statusCallerID string
}

func newActionClient(node ros.Node, action string, actionType ActionType) *actionClient {
	ac := &actionClient{
		node:       node,
		action:     action,
		actionType: actionType,
		idGen:      newGoalIDGenerator(action),
		handlers:   map[string]*clientGoalHandler{},
	}

	ac.goalPub = node.NewPublisher(fmt.Sprintf("%s/goal", action), actionType.GoalType())
	ac.cancelPub = node.NewPublisher(fmt.Sprintf("%s/cancel", action), actionlib_msgs.MsgGoalID)
	ac.statusSub = node.NewSubscriber(fmt.Sprintf("%s/status", action), actionlib_msgs.MsgGoalStatusArray, ac.internalStatusCallback)
	ac.resultSub = node.NewSubscriber(fmt.Sprintf("%s/result", action), actionType.ResultType(), ac.internalResultCallback)
	ac.feedbackSub = node.NewSubscriber(fmt.Sprintf("%s/feedback", action), actionType.FeedbackType(), ac.internalFeedbackCallback)
	return ac
}

func (ac *actionClient) SendGoal(goal ros.Message, transitionCb, feedbackCb interface{}) ClientGoalHandler {
	now := ros.Now()
	actionGoal := ac.actionType.GoalType().NewMessage().(ActionGoal)
	actionGoal.SetHeader(std_msgs.Header{Stamp: now})
	actionGoal.SetGoalId(actionlib_msgs.GoalID{Stamp: now, Id: ac.idGen.generateID()})
	actionGoal.SetGoal(goal)

	gh := newClientGoalHandler(ac, actionGoal, transitionCb, feedbackCb)
	ac.handlersMutex.Lock()
	ac.handlers[actionGoal.GetGoalId().Id] = gh
	ac.handlersMutex.Unlock()

	ac.goalPub.Publish(actionGoal)
	return gh
}

func (ac *actionClient) CancelAllGoals() {
	ac.cancelPub.Publish(&actionlib_msgs.GoalID{})
}

func (ac *actionClient) CancelAllGoalsBeforeTime(stamp ros.Time) {
	ac.cancelPub.Publish(&actionlib_msgs.GoalID{Stamp: stamp})
}

// WaitForServer waits until a server is wired up to this client. A zero
// timeout waits forever. The goal and cancel publishers expose no
// subscriber counts here, so readiness is judged by the server's own
// publishers reaching us and the status stream flowing.
func (ac *actionClient) WaitForServer(timeout ros.Duration) bool {
	started := ros.Now()
	deadline := started.Add(timeout)
	rate := ros.NewRate(10.0)

	for ac.node.OK() {
		if ac.serverConnected() {
			return true
		}
		if !timeout.IsZero() {
			now := ros.Now()
			if now.Cmp(deadline) >= 0 {
				return false
			}
		}
		rate.Sleep()
	}
	return false
}

func (ac *actionClient) serverConnected() bool {
	ac.handlersMutex.RLock()
	statusReceived := ac.statusReceived
	ac.handlersMutex.RUnlock()

	return statusReceived &&
		ac.statusSub.GetNumPublishers() > 0 &&
		ac.resultSub.GetNumPublishers() > 0 &&
		ac.feedbackSub.GetNumPublishers() > 0
}

// deleteGoalHandler stops routing updates to a handler.
func (ac *actionClient) deleteGoalHandler(gh *clientGoalHandler) {
	ac.handlersMutex.Lock()
	delete(ac.handlers, gh.actionGoal.GetGoalId().Id)
	ac.handlersMutex.Unlock()
	gh.markExpired()
}

func (ac *actionClient) internalStatusCallback(statusArr *actionlib_msgs.GoalStatusArray, event ros.MessageEvent) {
	logger := ac.node.Logger()

	ac.handlersMutex.Lock()
	if !ac.statusReceived {
		ac.statusReceived = true
		ac.statusCallerID = event.PublisherName
		logger.Debugf("recieved first status message from action server %s", event.PublisherName)
	} else if ac.statusCallerID != event.PublisherName {
		logger.Warnf("previously received status from %s, now from %s: did the action server change?",
			ac.statusCallerID, event.PublisherName)
		ac.statusCallerID = event.PublisherName
	}
	handlers := make([]*clientGoalHandler, 0, len(ac.handlers))
	for _, gh := range ac.handlers {
		handlers = append(handlers, gh)
	}
	ac.handlersMutex.Unlock()

	for _, gh := range handlers {
		status, found := findGoalStatus(statusArr, gh.actionGoal.GetGoalId().Id)
		if err := gh.updateStatus(status, found); err != nil {
			logger.Error(err)
		}
	}
}

func (ac *actionClient) internalResultCallback(result ActionResult, event ros.MessageEvent) {
	ac.handlersMutex.RLock()
	gh, ok := ac.handlers[result.GetStatus().GoalId.Id]
	ac.handlersMutex.RUnlock()
	if !ok {
		return
	}
	if err := gh.updateResult(result); err != nil {
		ac.node.Logger().Error(err)
	}
}

func (ac *actionClient) internalFeedbackCallback(feedback ActionFeedback, event ros.MessageEvent) {
	ac.handlersMutex.RLock()
	gh, ok := ac.handlers[feedback.GetStatus().GoalId.Id]
	ac.handlersMutex.RUnlock()
	if !ok {
		return
	}
	gh.updateFeedback(feedback)
}

func findGoalStatus(statusArr *actionlib_msgs.GoalStatusArray, id string) (actionlib_msgs.GoalStatus, bool) {
	for _, status := range statusArr.StatusList {
		if status.GoalId.Id == id {
			return status, true
		}
	}
	return actionlib_msgs.GoalStatus{}, false
}
