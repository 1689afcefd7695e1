// Package ow_plexil is automatically generated from the message definition "ow_plexil/PlannerCommand.msg"
package ow_plexil

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo/ros"
)

type _MsgPlannerCommand struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgPlannerCommand) Text() string {
	return t.text
}

func (t *_MsgPlannerCommand) Name() string {
	return t.name
}

func (t *_MsgPlannerCommand) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgPlannerCommand) NewMessage() ros.Message {
	m := new(PlannerCommand)
	m.Command = ""
	m.Plans = []string{}
	return m
}

var (
	MsgPlannerCommand = &_MsgPlannerCommand{
		`# Command to the plan selection node together with the plans it
# applies to. ADD appends the named plans to the execution queue.
string command
string[] plans
`,
		"ow_plexil/PlannerCommand",
		"92b59e96792fce20e930042678778b73",
	}
)

type PlannerCommand struct {
	Command string   `rosmsg:"command:string"`
	Plans   []string `rosmsg:"plans:string[]"`
}

func (m *PlannerCommand) Type() ros.MessageType {
	return MsgPlannerCommand
}

func (m *PlannerCommand) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Command))))
	buf.Write([]byte(m.Command))
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Plans)))
	for _, e := range m.Plans {
		binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
		buf.Write([]byte(e))
	}
	return err
}

func (m *PlannerCommand) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Command = string(data)
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Plans = make([]string, int(size))
		for i := 0; i < int(size); i++ {
			{
				var size uint32
				if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
					return err
				}
				data := make([]byte, int(size))
				if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
					return err
				}
				m.Plans[i] = string(data)
			}
		}
	}
	return err
}
