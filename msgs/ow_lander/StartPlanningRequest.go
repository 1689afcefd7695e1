// Automatically generated from the message definition "ow_lander/StartPlanningRequest.msg"
package ow_lander

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgStartPlanningRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgStartPlanningRequest) Text() string {
	return t.text
}

func (t *_MsgStartPlanningRequest) Name() string {
	return t.name
}

func (t *_MsgStartPlanningRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgStartPlanningRequest) NewMessage() ros.Message {
	m := new(StartPlanningRequest)
	m.UseDefaults = false
	m.TrenchX = 0.0
	m.TrenchY = 0.0
	m.TrenchD = 0.0
	m.DeletePrevTraj = false
	return m
}

var (
	MsgStartPlanningRequest = &_MsgStartPlanningRequest{
		`bool use_defaults
float32 trench_x
float32 trench_y
float32 trench_d
bool delete_prev_traj
`,
		"ow_lander/StartPlanningRequest",
		"cb6797553382bf4afd18f33c41e46668",
	}
)

type StartPlanningRequest struct {
	UseDefaults    bool    `rosmsg:"use_defaults:bool"`
	TrenchX        float32 `rosmsg:"trench_x:float32"`
	TrenchY        float32 `rosmsg:"trench_y:float32"`
	TrenchD        float32 `rosmsg:"trench_d:float32"`
	DeletePrevTraj bool    `rosmsg:"delete_prev_traj:bool"`
}

func (m *StartPlanningRequest) Type() ros.MessageType {
	return MsgStartPlanningRequest
}

func (m *StartPlanningRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.UseDefaults)
	binary.Write(buf, binary.LittleEndian, m.TrenchX)
	binary.Write(buf, binary.LittleEndian, m.TrenchY)
	binary.Write(buf, binary.LittleEndian, m.TrenchD)
	binary.Write(buf, binary.LittleEndian, m.DeletePrevTraj)
	return err
}

func (m *StartPlanningRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.UseDefaults); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TrenchX); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TrenchY); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TrenchD); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.DeletePrevTraj); err != nil {
		return err
	}
	return err
}
