// Automatically generated from the message definition "ow_lander/PublishTrajectoryRequest.msg"
package ow_lander

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgPublishTrajectoryRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgPublishTrajectoryRequest) Text() string {
	return t.text
}

func (t *_MsgPublishTrajectoryRequest) Name() string {
	return t.name
}

func (t *_MsgPublishTrajectoryRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgPublishTrajectoryRequest) NewMessage() ros.Message {
	m := new(PublishTrajectoryRequest)
	m.UseLatest = false
	m.TrajectoryFilename = ""
	return m
}

var (
	MsgPublishTrajectoryRequest = &_MsgPublishTrajectoryRequest{
		`bool use_latest
string trajectory_filename
`,
		"ow_lander/PublishTrajectoryRequest",
		"b1ed61cb5473c09191cfe3aae1d61012",
	}
)

type PublishTrajectoryRequest struct {
	UseLatest          bool   `rosmsg:"use_latest:bool"`
	TrajectoryFilename string `rosmsg:"trajectory_filename:string"`
}

func (m *PublishTrajectoryRequest) Type() ros.MessageType {
	return MsgPublishTrajectoryRequest
}

func (m *PublishTrajectoryRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.UseLatest)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.TrajectoryFilename))))
	buf.Write([]byte(m.TrajectoryFilename))
	return err
}

func (m *PublishTrajectoryRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.UseLatest); err != nil {
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
		m.TrajectoryFilename = string(data)
	}
	return err
}
