// Automatically generated from the message definition "ow_plexil/MoveGuardedFeedback.msg"
package ow_plexil

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedFeedback struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedFeedback) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedFeedback) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedFeedback) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedFeedback) NewMessage() ros.Message {
	m := new(MoveGuardedFeedback)
	m.CurrentX = 0.0
	m.CurrentY = 0.0
	m.CurrentZ = 0.0
	return m
}

var (
	MsgMoveGuardedFeedback = &_MsgMoveGuardedFeedback{
		`# feedback
float64 current_x
float64 current_y
float64 current_z
`,
		"ow_plexil/MoveGuardedFeedback",
		"b585bc81d29bebb84a7c16159bcfb754",
	}
)

type MoveGuardedFeedback struct {
	CurrentX float64 `rosmsg:"current_x:float64"`
	CurrentY float64 `rosmsg:"current_y:float64"`
	CurrentZ float64 `rosmsg:"current_z:float64"`
}

func (m *MoveGuardedFeedback) Type() ros.MessageType {
	return MsgMoveGuardedFeedback
}

func (m *MoveGuardedFeedback) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.CurrentX)
	binary.Write(buf, binary.LittleEndian, m.CurrentY)
	binary.Write(buf, binary.LittleEndian, m.CurrentZ)
	return err
}

func (m *MoveGuardedFeedback) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.CurrentX); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.CurrentY); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.CurrentZ); err != nil {
		return err
	}
	return err
}
