// Package actionlib implements the ROS action protocol on top of rosgo
// topics: a goal/cancel/status/feedback/result topic set per action,
// with the goal state machines the protocol prescribes on both sides.
package actionlib

import (
	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

func NewActionServer(node ros.Node, action string, actionType ActionType, goalCb, cancelCb interface{}) ActionServer {
	return newActionServer(node, action, actionType, goalCb, cancelCb)
}

func NewActionClient(node ros.Node, action string, actionType ActionType) ActionClient {
	return newActionClient(node, action, actionType)
}

func NewSimpleActionServer(node ros.Node, action string, actionType ActionType, executeCb interface{}) SimpleActionServer {
	return newSimpleServer(node, action, actionType, executeCb)
}

func NewSimpleActionClient(node ros.Node, action string, actionType ActionType) SimpleActionClient {
	return newSimpleClient(node, action, actionType)
}

type ActionServer interface {
	Start()
	Shutdown()
	PublishResult(status actionlib_msgs.GoalStatus, result ros.Message)
	PublishFeedback(status actionlib_msgs.GoalStatus, feedback ros.Message)
	PublishStatus()
	RegisterGoalCallback(interface{})
	RegisterCancelCallback(interface{})
}

type ActionClient interface {
	WaitForServer(timeout ros.Duration) bool
	SendGoal(goal ros.Message, transitionCb, feedbackCb interface{}) ClientGoalHandler
	CancelAllGoals()
	CancelAllGoalsBeforeTime(stamp ros.Time)
}

type SimpleActionServer interface {
	Start()
	IsNewGoalAvailable() bool
	IsPreemptRequested() bool
	IsActive() bool
	AcceptNewGoal() (ros.Message, error)
	SetSucceeded(result ros.Message, text string) error
	SetAborted(result ros.Message, text string) error
	SetPreempted(result ros.Message, text string) error
	PublishFeedback(feedback ros.Message)
	GetDefaultResult() ros.Message
	RegisterGoalCallback(callback interface{}) error
	RegisterPreemptCallback(callback interface{})
}

type SimpleActionClient interface {
	WaitForServer(timeout ros.Duration) bool
	SendGoal(goal ros.Message, doneCb, activeCb, feedbackCb interface{})
	SendGoalAndWait(goal ros.Message, executeTimeout, preemptTimeout ros.Duration) (uint8, error)
	WaitForResult(timeout ros.Duration) bool
	GetResult() (ros.Message, error)
	GetState() (uint8, error)
	GetGoalStatusText() (string, error)
	CancelGoal() error
	CancelAllGoals()
	StopTrackingGoal()
}

type ClientGoalHandler interface {
	IsExpired() bool
	GetCommState() (CommState, error)
	GetGoalStatus() (uint8, error)
	GetGoalStatusText() (string, error)
	GetTerminalState() (uint8, error)
	GetResult() (ros.Message, error)
	Resend() error
	Cancel() error
}

type ServerGoalHandler interface {
	SetAccepted(text string) error
	SetCancelled(result ros.Message, text string) error
	SetRejected(result ros.Message, text string) error
	SetAborted(result ros.Message, text string) error
	SetSucceeded(result ros.Message, text string) error
	SetCancelRequested() bool
	PublishFeedback(feedback ros.Message)
	GetGoal() ros.Message
	GetGoalId() actionlib_msgs.GoalID
	GetGoalStatus() actionlib_msgs.GoalStatus
	Equal(other ServerGoalHandler) bool
	GetHandlerDestructionTime() ros.Time
	SetHandlerDestructionTime(t ros.Time)
}
