// Automatically generated from the message definition "ow_plexil/MoveGuardedActionResult.msg"
package ow_plexil

import (
	"bytes"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedActionResult struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedActionResult) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedActionResult) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedActionResult) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedActionResult) NewMessage() ros.Message {
	m := new(MoveGuardedActionResult)
	m.Header = std_msgs.Header{}
	m.Status = actionlib_msgs.GoalStatus{}
	m.Result = MoveGuardedResult{}
	return m
}

var (
	MsgMoveGuardedActionResult = &_MsgMoveGuardedActionResult{
		`Header header
actionlib_msgs/GoalStatus status
MoveGuardedResult result
`,
		"ow_plexil/MoveGuardedActionResult",
		"3fa2b15df3c07c71945669df816f357b",
	}
)

type MoveGuardedActionResult struct {
	Header std_msgs.Header           `rosmsg:"header:Header"`
	Status actionlib_msgs.GoalStatus `rosmsg:"status:GoalStatus"`
	Result MoveGuardedResult         `rosmsg:"result:MoveGuardedResult"`
}

func (m *MoveGuardedActionResult) Type() ros.MessageType {
	return MsgMoveGuardedActionResult
}

func (m *MoveGuardedActionResult) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	if err = m.Status.Serialize(buf); err != nil {
		return err
	}
	if err = m.Result.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedActionResult) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Status.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Result.Deserialize(buf); err != nil {
		return err
	}
	return err
}

func (m *MoveGuardedActionResult) GetHeader() std_msgs.Header {
	return m.Header
}

func (m *MoveGuardedActionResult) GetStatus() actionlib_msgs.GoalStatus {
	return m.Status
}

func (m *MoveGuardedActionResult) GetResult() ros.Message {
	return &m.Result
}

func (m *MoveGuardedActionResult) SetHeader(header std_msgs.Header) {
	m.Header = header
}

func (m *MoveGuardedActionResult) SetStatus(status actionlib_msgs.GoalStatus) {
	m.Status = status
}

func (m *MoveGuardedActionResult) SetResult(result ros.Message) {
	m.Result = *result.(*MoveGuardedResult)
}
