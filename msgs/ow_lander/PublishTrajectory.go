// Automatically generated from the message definition "ow_lander/PublishTrajectory.srv"
package ow_lander

import (
	"github.com/edwinhayes/rosgo/ros"
)

// Service type metadata
type _SrvPublishTrajectory struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvPublishTrajectory) Name() string                  { return t.name }
func (t *_SrvPublishTrajectory) MD5Sum() string                { return t.md5sum }
func (t *_SrvPublishTrajectory) Text() string                  { return t.text }
func (t *_SrvPublishTrajectory) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvPublishTrajectory) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvPublishTrajectory) NewService() ros.Service {
	return new(PublishTrajectory)
}

var (
	SrvPublishTrajectory = &_SrvPublishTrajectory{
		"ow_lander/PublishTrajectory",
		"27080930dbc41a5a878857337bc0e7a7",
		`bool use_latest
string trajectory_filename
---
bool success
string message
`,
		MsgPublishTrajectoryRequest,
		MsgPublishTrajectoryResponse,
	}
)

type PublishTrajectory struct {
	Request  PublishTrajectoryRequest
	Response PublishTrajectoryResponse
}

func (s *PublishTrajectory) ReqMessage() ros.Message { return &s.Request }
func (s *PublishTrajectory) ResMessage() ros.Message { return &s.Response }
