package actionlib

import (
	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

// ActionType is the metadata bundle of a generated action: the five
// message types that travel on the action's topics.
type ActionType interface {
	MD5Sum() string
	Name() string
	GoalType() ros.MessageType
	FeedbackType() ros.MessageType
	ResultType() ros.MessageType
	NewAction() Action
}

type Action interface {
	GetActionGoal() ActionGoal
	GetActionFeedback() ActionFeedback
	GetActionResult() ActionResult
}

// ActionGoal is the wire wrapper around a user goal message.
type ActionGoal interface {
	ros.Message
	GetHeader() std_msgs.Header
	GetGoalId() actionlib_msgs.GoalID
	GetGoal() ros.Message
	SetHeader(std_msgs.Header)
	SetGoalId(actionlib_msgs.GoalID)
	SetGoal(ros.Message)
}

// ActionFeedback is the wire wrapper around a user feedback message.
type ActionFeedback interface {
	ros.Message
	GetHeader() std_msgs.Header
	GetStatus() actionlib_msgs.GoalStatus
	GetFeedback() ros.Message
	SetHeader(std_msgs.Header)
	SetStatus(actionlib_msgs.GoalStatus)
	SetFeedback(ros.Message)
}

// ActionResult is the wire wrapper around a user result message.
type ActionResult interface {
	ros.Message
	GetHeader() std_msgs.Header
	GetStatus() actionlib_msgs.GoalStatus
	GetResult() ros.Message
	SetHeader(std_msgs.Header)
	SetStatus(actionlib_msgs.GoalStatus)
	SetResult(ros.Message)
}
