// Automatically generated from the message definition "ow_plexil/MoveGuardedAction.msg"
package ow_plexil

import (
	"bytes"

	"github.com/MilanAdd/ow-autonomy/actionlib"
	"github.com/edwinhayes/rosgo/ros"
)

type _ActionMoveGuarded struct {
	text   string
	name   string
	md5sum string
}

func (t *_ActionMoveGuarded) Text() string {
	return t.text
}

func (t *_ActionMoveGuarded) Name() string {
	return t.name
}

func (t *_ActionMoveGuarded) MD5Sum() string {
	return t.md5sum
}

func (t *_ActionMoveGuarded) GoalType() ros.MessageType {
	return MsgMoveGuardedActionGoal
}

func (t *_ActionMoveGuarded) FeedbackType() ros.MessageType {
	return MsgMoveGuardedActionFeedback
}

func (t *_ActionMoveGuarded) ResultType() ros.MessageType {
	return MsgMoveGuardedActionResult
}

func (t *_ActionMoveGuarded) NewMessage() ros.Message {
	m := new(MoveGuardedAction)
	m.ActionGoal = MoveGuardedActionGoal{}
	m.ActionResult = MoveGuardedActionResult{}
	m.ActionFeedback = MoveGuardedActionFeedback{}
	return m
}

func (t *_ActionMoveGuarded) NewAction() actionlib.Action {
	m := new(MoveGuardedAction)
	m.ActionGoal = MoveGuardedActionGoal{}
	m.ActionResult = MoveGuardedActionResult{}
	m.ActionFeedback = MoveGuardedActionFeedback{}
	return m
}

var (
	ActionMoveGuarded = &_ActionMoveGuarded{
		`MoveGuardedActionGoal action_goal
MoveGuardedActionResult action_result
MoveGuardedActionFeedback action_feedback
`,
		"ow_plexil/MoveGuardedAction",
		"eb484e3e0117cada64f06fcfabf4213d",
	}
)

type MoveGuardedAction struct {
	ActionGoal     MoveGuardedActionGoal     `rosmsg:"action_goal:MoveGuardedActionGoal"`
	ActionResult   MoveGuardedActionResult   `rosmsg:"action_result:MoveGuardedActionResult"`
	ActionFeedback MoveGuardedActionFeedback `rosmsg:"action_feedback:MoveGuardedActionFeedback"`
}

func (m *MoveGuardedAction) Type() ros.MessageType {
	return ActionMoveGuarded
}

func (m *MoveGuardedAction) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.ActionGoal.Serialize(buf); err != nil {
		return err
	}
	if err = m.ActionResult.Serialize(buf); err != nil {
		return err
	}
	if err = m.ActionFeedback.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedAction) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.ActionGoal.Deserialize(buf); err != nil {
		return err
	}
	if err = m.ActionResult.Deserialize(buf); err != nil {
		return err
	}
	if err = m.ActionFeedback.Deserialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedAction) GetActionGoal() actionlib.ActionGoal {
	return &m.ActionGoal
}

func (m *MoveGuardedAction) GetActionFeedback() actionlib.ActionFeedback {
	return &m.ActionFeedback
}

func (m *MoveGuardedAction) GetActionResult() actionlib.ActionResult {
	return &m.ActionResult
}
