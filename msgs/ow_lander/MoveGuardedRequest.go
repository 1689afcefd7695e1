// Automatically generated from the message definition "ow_lander/MoveGuardedRequest.msg"
package ow_lander

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedRequest) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedRequest) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedRequest) NewMessage() ros.Message {
	m := new(MoveGuardedRequest)
	m.UseDefaults = false
	m.TargetX = 0.0
	m.TargetY = 0.0
	m.TargetZ = 0.0
	m.SurfaceNormalX = 0.0
	m.SurfaceNormalY = 0.0
	m.SurfaceNormalZ = 0.0
	m.OffsetDistance = 0.0
	m.OverdriveDistance = 0.0
	m.DeletePrevTraj = false
	m.Retract = false
	return m
}

var (
	MsgMoveGuardedRequest = &_MsgMoveGuardedRequest{
		`bool use_defaults
float32 target_x
float32 target_y
float32 target_z
float32 surface_normal_x
float32 surface_normal_y
float32 surface_normal_z
float32 offset_distance
float32 overdrive_distance
bool delete_prev_traj
bool retract
`,
		"ow_lander/MoveGuardedRequest",
		"17192973ae729ecacfec33c28e1b5f83",
	}
)

type MoveGuardedRequest struct {
	UseDefaults       bool    `rosmsg:"use_defaults:bool"`
	TargetX           float32 `rosmsg:"target_x:float32"`
	TargetY           float32 `rosmsg:"target_y:float32"`
	TargetZ           float32 `rosmsg:"target_z:float32"`
	SurfaceNormalX    float32 `rosmsg:"surface_normal_x:float32"`
	SurfaceNormalY    float32 `rosmsg:"surface_normal_y:float32"`
	SurfaceNormalZ    float32 `rosmsg:"surface_normal_z:float32"`
	OffsetDistance    float32 `rosmsg:"offset_distance:float32"`
	OverdriveDistance float32 `rosmsg:"overdrive_distance:float32"`
	DeletePrevTraj    bool    `rosmsg:"delete_prev_traj:bool"`
	Retract           bool    `rosmsg:"retract:bool"`
}

func (m *MoveGuardedRequest) Type() ros.MessageType {
	return MsgMoveGuardedRequest
}

func (m *MoveGuardedRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.UseDefaults)
	binary.Write(buf, binary.LittleEndian, m.TargetX)
	binary.Write(buf, binary.LittleEndian, m.TargetY)
	binary.Write(buf, binary.LittleEndian, m.TargetZ)
	binary.Write(buf, binary.LittleEndian, m.SurfaceNormalX)
	binary.Write(buf, binary.LittleEndian, m.SurfaceNormalY)
	binary.Write(buf, binary.LittleEndian, m.SurfaceNormalZ)
	binary.Write(buf, binary.LittleEndian, m.OffsetDistance)
	binary.Write(buf, binary.LittleEndian, m.OverdriveDistance)
	binary.Write(buf, binary.LittleEndian, m.DeletePrevTraj)
	binary.Write(buf, binary.LittleEndian, m.Retract)
	return err
}

func (m *MoveGuardedRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.UseDefaults); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TargetX); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TargetY); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.TargetZ); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.SurfaceNormalX); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.SurfaceNormalY); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.SurfaceNormalZ); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.OffsetDistance); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.OverdriveDistance); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.DeletePrevTraj); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Retract); err != nil {
		return err
	}
	return err
}
