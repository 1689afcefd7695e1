// Package control_msgs is automatically generated from the message definition "control_msgs/JointControllerState.msg"
package control_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

type _MsgJointControllerState struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgJointControllerState) Text() string {
	return t.text
}

func (t *_MsgJointControllerState) Name() string {
	return t.name
}

func (t *_MsgJointControllerState) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgJointControllerState) NewMessage() ros.Message {
	m := new(JointControllerState)
	m.Header = std_msgs.Header{}
	m.SetPoint = 0.0
	m.ProcessValue = 0.0
	m.ProcessValueDot = 0.0
	m.Error = 0.0
	m.TimeStep = 0.0
	m.Command = 0.0
	m.P = 0.0
	m.I = 0.0
	m.D = 0.0
	m.IClamp = 0.0
	m.Antiwindup = false
	return m
}

var (
	MsgJointControllerState = &_MsgJointControllerState{
		`Header header
float64 set_point
float64 process_value
float64 process_value_dot
float64 error
float64 time_step
float64 command
float64 p
float64 i
float64 d
float64 i_clamp
bool antiwindup
`,
		"control_msgs/JointControllerState",
		"987ad85e4756f3aef7f1e5e7fe0595d1",
	}
)

type JointControllerState struct {
	Header          std_msgs.Header `rosmsg:"header:Header"`
	SetPoint        float64         `rosmsg:"set_point:float64"`
	ProcessValue    float64         `rosmsg:"process_value:float64"`
	ProcessValueDot float64         `rosmsg:"process_value_dot:float64"`
	Error           float64         `rosmsg:"error:float64"`
	TimeStep        float64         `rosmsg:"time_step:float64"`
	Command         float64         `rosmsg:"command:float64"`
	P               float64         `rosmsg:"p:float64"`
	I               float64         `rosmsg:"i:float64"`
	D               float64         `rosmsg:"d:float64"`
	IClamp          float64         `rosmsg:"i_clamp:float64"`
	Antiwindup      bool            `rosmsg:"antiwindup:bool"`
}

func (m *JointControllerState) Type() ros.MessageType {
	return MsgJointControllerState
}

func (m *JointControllerState) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.SetPoint)
	binary.Write(buf, binary.LittleEndian, m.ProcessValue)
	binary.Write(buf, binary.LittleEndian, m.ProcessValueDot)
	binary.Write(buf, binary.LittleEndian, m.Error)
	binary.Write(buf, binary.LittleEndian, m.TimeStep)
	binary.Write(buf, binary.LittleEndian, m.Command)
	binary.Write(buf, binary.LittleEndian, m.P)
	binary.Write(buf, binary.LittleEndian, m.I)
	binary.Write(buf, binary.LittleEndian, m.D)
	binary.Write(buf, binary.LittleEndian, m.IClamp)
	binary.Write(buf, binary.LittleEndian, m.Antiwindup)
	return err
}

func (m *JointControllerState) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.SetPoint); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.ProcessValue); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.ProcessValueDot); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TimeStep); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Command); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.P); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.I); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.D); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.IClamp); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Antiwindup); err != nil {
		return err
	}
	return err
}
