// Automatically generated from the message definition "ow_plexil/MoveGuardedGoal.msg"
package ow_plexil

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgMoveGuardedGoal struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgMoveGuardedGoal) Text() string {
	return t.text
}

func (t *_MsgMoveGuardedGoal) Name() string {
	return t.name
}

func (t *_MsgMoveGuardedGoal) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgMoveGuardedGoal) NewMessage() ros.Message {
	m := new(MoveGuardedGoal)
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
	MsgMoveGuardedGoal = &_MsgMoveGuardedGoal{
		`# goal definition
bool use_defaults
float64 target_x
float64 target_y
float64 target_z
float64 surface_normal_x
float64 surface_normal_y
float64 surface_normal_z
float64 offset_distance
float64 overdrive_distance
bool delete_prev_traj
bool retract
`,
		"ow_plexil/MoveGuardedGoal",
		"a73f7c41d9adfef93dd85a71774afde5",
	}
)

type MoveGuardedGoal struct {
	UseDefaults       bool    `rosmsg:"use_defaults:bool"`
	TargetX           float64 `rosmsg:"target_x:float64"`
	TargetY           float64 `rosmsg:"target_y:float64"`
	TargetZ           float64 `rosmsg:"target_z:float64"`
	SurfaceNormalX    float64 `rosmsg:"surface_normal_x:float64"`
	SurfaceNormalY    float64 `rosmsg:"surface_normal_y:float64"`
	SurfaceNormalZ    float64 `rosmsg:"surface_normal_z:float64"`
	OffsetDistance    float64 `rosmsg:"offset_distance:float64"`
	OverdriveDistance float64 `rosmsg:"overdrive_distance:float64"`
	DeletePrevTraj    bool    `rosmsg:"delete_prev_traj:bool"`
	Retract           bool    `rosmsg:"retract:bool"`
}

func (m *MoveGuardedGoal) Type() ros.MessageType {
	return MsgMoveGuardedGoal
}

func (m *MoveGuardedGoal) Serialize(buf *bytes.Buffer) error {
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

func (m *MoveGuardedGoal) Deserialize(buf *bytes.Reader) error {
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
