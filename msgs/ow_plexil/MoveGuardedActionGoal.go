// Automatically generated from the message definition "ow_plexil/MoveGuardedActionGoal.msg"
package ow_plexil

import (
	"bytes"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedActionGoal struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedActionGoal) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedActionGoal) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedActionGoal) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedActionGoal) NewMessage() ros.Message {
	m := new(MoveGuardedActionGoal)
	m.Header = std_msgs.Header{}
	m.GoalId = actionlib_msgs.GoalID{}
	m.Goal = MoveGuardedGoal{}
	return m
}

var (
	MsgMoveGuardedActionGoal = &_MsgMoveGuardedActionGoal{
		`Header header
actionlib_msgs/GoalID goal_id
MoveGuardedGoal goal
`,
		"ow_plexil/MoveGuardedActionGoal",
		"87561c30e1275f69a08a23bcd19ae6e5",
	}
)

type MoveGuardedActionGoal struct {
	Header std_msgs.Header       `rosmsg:"header:Header"`
	GoalId actionlib_msgs.GoalID `rosmsg:"goal_id:GoalID"`
	Goal   MoveGuardedGoal       `rosmsg:"goal:MoveGuardedGoal"`
}

func (m *MoveGuardedActionGoal) Type() ros.MessageType {
	return MsgMoveGuardedActionGoal
}

func (m *MoveGuardedActionGoal) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	if err = m.GoalId.Serialize(buf); err != nil {
		return err
	}
	if err = m.Goal.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedActionGoal) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = m.GoalId.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Goal.Deserialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedActionGoal) GetHeader() std_msgs.Header {
	return m.Header
}

func (m *MoveGuardedActionGoal) GetGoalId() actionlib_msgs.GoalID {
	return m.GoalId
}

func (m *MoveGuardedActionGoal) GetGoal() ros.Message {
	return &m.Goal
}

func (m *MoveGuardedActionGoal) SetHeader(header std_msgs.Header) {
	m.Header = header
}

func (m *MoveGuardedActionGoal) SetGoalId(id actionlib_msgs.GoalID) {
	m.GoalId = id
}

func (m *MoveGuardedActionGoal) SetGoal(goal ros.Message) {
	m.Goal = *goal.(*MoveGuardedGoal)
}
