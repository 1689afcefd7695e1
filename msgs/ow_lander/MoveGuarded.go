// Automatically generated from the message definition "ow_lander/MoveGuarded.srv"
package ow_lander

import (
	"github.com/edwinhayes/rosgo/ros"
)

// Service type metadata
type _SrvMoveGuarded struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvMoveGuarded) Name() string                  { return t.name }
func (t *_SrvMoveGuarded) MD5Sum() string                { return t.md5sum }
func (t *_SrvMoveGuarded) Text() string                  { return t.text }
func (t *_SrvMoveGuarded) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvMoveGuarded) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvMoveGuarded) NewService() ros.Service {
	return new(MoveGuarded)
}

var (
	SrvMoveGuarded = &_SrvMoveGuarded{
		"ow_lander/MoveGuarded",
		"4f9b7c3b49122ab6eca1dbd0bd0f2066",
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
---
bool success
string message
`,
		MsgMoveGuardedRequest,
		MsgMoveGuardedResponse,
	}
)

type MoveGuarded struct {
	Request  MoveGuardedRequest
	Response MoveGuardedResponse
}

func (s *MoveGuarded) ReqMessage() ros.Message { return &s.Request }
func (s *MoveGuarded) ResMessage() ros.Message { return &s.Response }
