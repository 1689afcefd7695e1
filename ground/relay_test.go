package ground

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MilanAdd/ow-autonomy/msgs/geometry_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/ow_plexil"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/edwinhayes/rosgo/ros"
)

// fakeNode satisfies ros.Node without a ROS master; only the topic
// surface the relay touches does anything.
type fakeNode struct {
	mutex sync.Mutex
	ok    bool
	pubs  map[string]*fakePublisher
	subs  map[string]interface{}
}

func newFakeNode() *fakeNode {
	return &fakeNode{
		ok:   true,
		pubs: map[string]*fakePublisher{},
		subs: map[string]interface{}{},
	}
}

func (n *fakeNode) NewPublisher(topic string, msgType ros.MessageType) ros.Publisher {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	pub := &fakePublisher{}
	n.pubs[topic] = pub
	return pub
}

func (n *fakeNode) NewPublisherWithCallbacks(topic string, msgType ros.MessageType,
	connect, disconnect func(ros.SingleSubscriberPublisher)) ros.Publisher {
	return n.NewPublisher(topic, msgType)
}

func (n *fakeNode) NewSubscriber(topic string, msgType ros.MessageType, callback interface{}) ros.Subscriber {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.subs[topic] = callback
	return &fakeSubscriber{}
}

func (n *fakeNode) NewServiceClient(service string, srvType ros.ServiceType) ros.ServiceClient {
	return nil
}

func (n *fakeNode) NewServiceServer(service string, srvType ros.ServiceType, callback interface{}) ros.ServiceServer {
	return nil
}

func (n *fakeNode) OK() bool {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.ok
}

func (n *fakeNode) SpinOnce() {}
func (n *fakeNode) Spin()     {}

func (n *fakeNode) Shutdown() {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.ok = false
}

func (n *fakeNode) GetParam(name string) (interface{}, error) {
	return nil, fmt.Errorf("no such param %s", name)
}

func (n *fakeNode) SetParam(name string, value interface{}) error { return nil }
func (n *fakeNode) HasParam(name string) (bool, error)            { return false, nil }
func (n *fakeNode) SearchParam(name string) (string, error)       { return name, nil }
func (n *fakeNode) DeleteParam(name string) error                 { return nil }
func (n *fakeNode) Logger() ros.Logger                            { return ros.NewDefaultLogger() }
func (n *fakeNode) NonRosArgs() []string                          { return nil }

type fakePublisher struct {
	mutex sync.Mutex
	sent  []ros.Message
}

func (p *fakePublisher) Publish(msg ros.Message) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.sent = append(p.sent, msg)
}

func (p *fakePublisher) Shutdown() {}

func (p *fakePublisher) messages() []ros.Message {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return append([]ros.Message(nil), p.sent...)
}

type fakeSubscriber struct{}

func (s *fakeSubscriber) GetNumPublishers() int { return 0 }
func (s *fakeSubscriber) Shutdown()             {}

func newTestRelay() (*Relay, *fakeNode, *telemetry.Bus) {
	node := newFakeNode()
	bus := telemetry.NewBus()
	return New(node, bus), node, bus
}

func uplink(r *Relay, data string) {
	r.messageCallback(&std_msgs.String{Data: data})
}

func TestNewWiresTopics(t *testing.T) {
	_, node, _ := newTestRelay()
	for _, topic := range []string{"/plexil_plan_selection_commands", "/GroundControl/fwd_link"} {
		if _, ok := node.pubs[topic]; !ok {
			t.Errorf("no publisher on %s", topic)
		}
	}
	if _, ok := node.subs["/GroundControl/message"]; !ok {
		t.Error("no subscriber on /GroundControl/message")
	}
}

func TestUplinkRelayed(t *testing.T) {
	r, node, bus := newTestRelay()

	uplink(r, `{"command": "ADD", "plans": ["Demo1", "Demo2"]}`)

	sent := node.pubs["/plexil_plan_selection_commands"].messages()
	if len(sent) != 1 {
		t.Fatalf("relayed %d commands; want 1", len(sent))
	}
	cmd := sent[0].(*ow_plexil.PlannerCommand)
	if cmd.Command != "ADD" || len(cmd.Plans) != 2 || cmd.Plans[0] != "Demo1" || cmd.Plans[1] != "Demo2" {
		t.Errorf("relayed command = %+v", cmd)
	}

	if v, ok := bus.Lookup("MessageReceived"); !ok || v != true {
		t.Errorf("MessageReceived = %v, %t", v, ok)
	}

	r.publishLink()
	points := node.pubs["/GroundControl/fwd_link"].messages()
	if len(points) != 1 {
		t.Fatalf("published %d points; want 1", len(points))
	}
	if pt := points[0].(*geometry_msgs.Point); pt.X != 1 || pt.Y != 0 || pt.Z != 0 {
		t.Errorf("forward link point = %+v", pt)
	}
}

func TestMalformedUplinksDropped(t *testing.T) {
	r, node, bus := newTestRelay()

	uplink(r, `{nope`)
	uplink(r, `{"plans": ["NoCommand"]}`)
	uplink(r, `{"command": "ADD", "plans": [5]}`)

	if sent := node.pubs["/plexil_plan_selection_commands"].messages(); len(sent) != 0 {
		t.Errorf("relayed %d malformed uplinks", len(sent))
	}
	if _, ok := bus.Lookup("MessageReceived"); ok {
		t.Error("MessageReceived set by a dropped uplink")
	}

	r.publishLink()
	points := node.pubs["/GroundControl/fwd_link"].messages()
	if pt := points[0].(*geometry_msgs.Point); pt.X != 0 || pt.Y != 3 {
		t.Errorf("forward link point = %+v", pt)
	}
}

func TestUplinkCommandOnly(t *testing.T) {
	r, node, _ := newTestRelay()

	uplink(r, `{"command": "PAUSE"}`)

	sent := node.pubs["/plexil_plan_selection_commands"].messages()
	if len(sent) != 1 {
		t.Fatalf("relayed %d commands; want 1", len(sent))
	}
	cmd := sent[0].(*ow_plexil.PlannerCommand)
	if cmd.Command != "PAUSE" || len(cmd.Plans) != 0 {
		t.Errorf("relayed command = %+v", cmd)
	}
}

func TestParseUplink(t *testing.T) {
	command, plans, err := parseUplink([]byte(`{"command": "RESET", "plans": []}`))
	if err != nil {
		t.Fatalf("parseUplink: %v", err)
	}
	if command != "RESET" || len(plans) != 0 {
		t.Errorf("parseUplink = %s, %v", command, plans)
	}

	bad := []string{
		`not json at all`,
		`{"command": 9}`,
		`{"command": "ADD", "plans": "Demo"}`,
	}
	for _, data := range bad {
		if _, _, err := parseUplink([]byte(data)); err == nil {
			t.Errorf("parseUplink(%s) accepted", data)
		}
	}
}
