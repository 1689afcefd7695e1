// Automatically generated from the message definition "ow_plexil/MoveGuardedActionFeedback.msg"
package ow_plexil

import (
	"bytes"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedActionFeedback struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedActionFeedback) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedActionFeedback) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedActionFeedback) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedActionFeedback) NewMessage() ros.Message {
	m := new(MoveGuardedActionFeedback)
	m.Header = std_msgs.Header{}
	m.Status = actionlib_msgs.GoalStatus{}
	m.Feedback = MoveGuardedFeedback{}
	return m
}

var (
	MsgMoveGuardedActionFeedback = &_MsgMoveGuardedActionFeedback{
		`Header header
actionlib_msgs/GoalStatus status
MoveGuardedFeedback feedback
`,
		"ow_plexil/MoveGuardedActionFeedback",
		"1f64aab3ddd074cffdd4463b608953ba",
	}
)

type MoveGuardedActionFeedback struct {
	Header   std_msgs.Header           `rosmsg:"header:Header"`
	Status   actionlib_msgs.GoalStatus `rosmsg:"status:GoalStatus"`
	Feedback MoveGuardedFeedback       `rosmsg:"feedback:MoveGuardedFeedback"`
}

func (m *MoveGuardedActionFeedback) Type() ros.MessageType {
	return MsgMoveGuardedActionFeedback
}

func (m *MoveGuardedActionFeedback) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	if err = m.Status.Serialize(buf); err != nil {
		return err
	}
	if err = m.Feedback.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedActionFeedback) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Status.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Feedback.Deserialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedActionFeedback) GetHeader() std_msgs.Header {
	return m.Header
}

func (m *MoveGuardedActionFeedback) GetStatus() actionlib_msgs.GoalStatus {
	return m.Status
}

func (m *MoveGuardedActionFeedback) GetFeedback() ros.Message {
	return &m.Feedback
}

func (m *MoveGuardedActionFeedback) SetHeader(header std_msgs.Header) {
	m.Header = header
}

func (m *MoveGuardedActionFeedback) SetStatus(status actionlib_msgs.GoalStatus) {
	m.Status = status
}

func (m *MoveGuardedActionFeedback) SetFeedback(feedback ros.Message) {
	m.Feedback = *feedback.(*MoveGuardedFeedback)
}
