// Automatically generated from the message definition "ow_lander/StartPlanning.srv"
package ow_lander

import (
	"github.com/edwinhayes/rosgo/ros"
)

// Service type metadata
type _SrvStartPlanning struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvStartPlanning) Name() string                  { return t.name }
func (t *_SrvStartPlanning) MD5Sum() string                { return t.md5sum }
func (t *_SrvStartPlanning) Text() string                  { return t.text }
func (t *_SrvStartPlanning) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvStartPlanning) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvStartPlanning) NewService() ros.Service {
	return new(StartPlanning)
}

var (
	SrvStartPlanning = &_SrvStartPlanning{
		"ow_lander/StartPlanning",
		"427f1c310a978b7d4cc535c86c32f982",
		`bool use_defaults
float32 trench_x
float32 trench_y
float32 trench_d
bool delete_prev_traj
---
bool success
string message
`,
		MsgStartPlanningRequest,
		MsgStartPlanningResponse,
	}
)

type StartPlanning struct {
	Request  StartPlanningRequest
	Response StartPlanningResponse
}

func (s *StartPlanning) ReqMessage() ros.Message { return &s.Request }
func (s *StartPlanning) ResMessage() ros.Message { return &s.Response }
