// Automatically generated from the message definition "ow_plexil/MoveGuardedResult.msg"
package ow_plexil

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedResult struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedResult) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedResult) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedResult) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedResult) NewMessage() ros.Message {
	m := new(MoveGuardedResult)
	m.Message = ""
	return m
}

var (
	MsgMoveGuardedResult = &_MsgMoveGuardedResult{
		`# result
string message
`,
		"ow_plexil/MoveGuardedResult",
		"5f003d6bcc824cbd51361d66d8e4f76c",
	}
)

type MoveGuardedResult struct {
	Message string `rosmsg:"message:string"`
}

func (m *MoveGuardedResult) Type() ros.MessageType {
	return MsgMoveGuardedResult
}

func (m *MoveGuardedResult) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Message))))
	buf.Write([]byte(m.Message))
	return err
}

func (m *MoveGuardedResult) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Message = string(data)
	}
	return err
}
