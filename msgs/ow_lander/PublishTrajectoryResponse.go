// Automatically generated from the message definition "ow_lander/PublishTrajectoryResponse.msg"
package ow_lander

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgPublishTrajectoryResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgPublishTrajectoryResponse) Text() string {
	return t.text
}

func (t *_MsgPublishTrajectoryResponse) Name() string {
	return t.name
}

func (t *_MsgPublishTrajectoryResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgPublishTrajectoryResponse) NewMessage() ros.Message {
	m := new(PublishTrajectoryResponse)
	m.Success = false
	m.Message = ""
	return m
}

var (
	MsgPublishTrajectoryResponse = &_MsgPublishTrajectoryResponse{
		`bool success
string message
`,
		"ow_lander/PublishTrajectoryResponse",
		"937c9679a518e3a18d831e57125ea522",
	}
)

type PublishTrajectoryResponse struct {
	Success bool   `rosmsg:"success:bool"`
	Message string `rosmsg:"message:string"`
}

func (m *PublishTrajectoryResponse) Type() ros.MessageType {
	return MsgPublishTrajectoryResponse
}

func (m *PublishTrajectoryResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Success)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Message))))
	buf.Write([]byte(m.Message))
	return err
}

func (m *PublishTrajectoryResponse) Deserialize(buf *bytes.Reader) error {
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
