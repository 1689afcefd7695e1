// Automatically generated from the message definition "ow_lander/StartPlanningResponse.msg"
package ow_lander

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgStartPlanningResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgStartPlanningResponse) Text() string {
	return t.text
}

func (t *_MsgStartPlanningResponse) Name() string {
	return t.name
}

func (t *_MsgStartPlanningResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgStartPlanningResponse) NewMessage() ros.Message {
	m := new(StartPlanningResponse)
	m.Success = false
	m.Message = ""
	return m
}

var (
	MsgStartPlanningResponse = &_MsgStartPlanningResponse{
		`bool success
string message
`,
		"ow_lander/StartPlanningResponse",
		"937c9679a518e3a18d831e57125ea522",
	}
)

type StartPlanningResponse struct {
	Success bool   `rosmsg:"success:bool"`
	Message string `rosmsg:"message:string"`
}

func (m *StartPlanningResponse) Type() ros.MessageType {
	return MsgStartPlanningResponse
}

func (m *StartPlanningResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Success)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Message))))
	buf.Write([]byte(m.Message))
	return err
}

func (m *StartPlanningResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Success); err != nil {
		return err
	}
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
