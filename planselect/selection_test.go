package planselect

import (
	"fmt"
	"sync"
	"testing"

	"github.com/MilanAdd/ow-autonomy/msgs/ow_plexil"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/MilanAdd/ow-autonomy/plexil"
	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/edwinhayes/rosgo/ros"
)

// fakeNode satisfies ros.Node without a ROS master; only the topic
// surface the selection logic touches does anything.
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

// statuses returns the published status strings in order.
func (p *fakePublisher) statuses() []string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	out := make([]string, 0, len(p.sent))
	for _, msg := range p.sent {
		out = append(out, msg.(*std_msgs.String).Data)
	}
	return out
}

type fakeSubscriber struct{}

func (s *fakeSubscriber) GetNumPublishers() int { return 0 }
func (s *fakeSubscriber) Shutdown()             {}

// fakeExecutive runs imaginary plans whose completion the tests
// control.
type fakeExecutive struct {
	mutex   sync.Mutex
	initErr error
	runErr  error
	inits   []string
	runs    []string
	running bool
	lastOK  bool
}

func (e *fakeExecutive) Initialize(configPath string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.initErr != nil {
		return e.initErr
	}
	e.inits = append(e.inits, configPath)
	return nil
}

func (e *fakeExecutive) RunPlan(plan string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.runErr != nil {
		return e.runErr
	}
	e.runs = append(e.runs, plan)
	e.running = true
	return nil
}

func (e *fakeExecutive) AllPlansFinished() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return !e.running
}

func (e *fakeExecutive) LastPlanSucceeded() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.lastOK
}

func (e *fakeExecutive) Shutdown() error { return nil }

func (e *fakeExecutive) finish(ok bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.running = false
	e.lastOK = ok
}

func (e *fakeExecutive) ranPlans() []string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return append([]string(nil), e.runs...)
}

func newTestSelection(initialPlan string) (*Selection, *fakeNode, *fakeExecutive, *fakePublisher) {
	node := newFakeNode()
	exec := &fakeExecutive{lastOK: true}
	adapter := plexil.NewAdapter(telemetry.NewBus())
	s := New(node, exec, adapter, "test-config.xml", initialPlan)
	return s, node, exec, node.pubs["/plexil_plan_selection_status"]
}

func command(s *Selection, cmd string, plans ...string) {
	s.commandCallback(&ow_plexil.PlannerCommand{Command: cmd, Plans: plans})
}

func wantStatuses(t *testing.T, pub *fakePublisher, want ...string) {
	t.Helper()
	got := pub.statuses()
	if len(got) != len(want) {
		t.Fatalf("statuses = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statuses = %v; want %v", got, want)
		}
	}
}

func TestNewWiresTopics(t *testing.T) {
	_, node, _, pub := newTestSelection("None")
	if pub == nil {
		t.Fatal("no status publisher on /plexil_plan_selection_status")
	}
	if _, ok := node.subs["/plexil_plan_selection_commands"]; !ok {
		t.Fatal("no subscriber on /plexil_plan_selection_commands")
	}
	wantStatuses(t, pub)
}

func TestInitialPlanRuns(t *testing.T) {
	s, _, exec, pub := newTestSelection("Demo")
	wantStatuses(t, pub, "Demo:queued")

	s.step()
	if len(exec.inits) != 1 || exec.inits[0] != "test-config.xml" {
		t.Errorf("inits = %v", exec.inits)
	}
	if plans := exec.ranPlans(); len(plans) != 1 || plans[0] != "Demo" {
		t.Errorf("ran plans = %v", plans)
	}
	wantStatuses(t, pub, "Demo:queued", "Demo:executing")
}

func TestPlanLifecycle(t *testing.T) {
	s, _, exec, pub := newTestSelection("None")

	command(s, "ADD", "First", "Second")
	wantStatuses(t, pub, "First:queued", "Second:queued")

	s.step()
	wantStatuses(t, pub, "First:queued", "Second:queued", "First:executing")

	// Still running: nothing new dispatches.
	s.step()
	if plans := exec.ranPlans(); len(plans) != 1 {
		t.Fatalf("ran plans = %v; want just First", plans)
	}

	exec.finish(true)
	s.step()
	wantStatuses(t, pub, "First:queued", "Second:queued", "First:executing",
		"First:complete", "Second:executing")

	exec.finish(false)
	s.step()
	wantStatuses(t, pub, "First:queued", "Second:queued", "First:executing",
		"First:complete", "Second:executing", "Second:failed")

	// The executive is initialized once, before the first plan.
	if len(exec.inits) != 1 {
		t.Errorf("inits = %v", exec.inits)
	}
}

func TestPauseAndResume(t *testing.T) {
	s, _, exec, _ := newTestSelection("None")
	command(s, "ADD", "Held")
	command(s, "PAUSE")

	s.step()
	if plans := exec.ranPlans(); len(plans) != 0 {
		t.Fatalf("paused selection ran %v", plans)
	}

	command(s, "RESUME")
	s.step()
	if plans := exec.ranPlans(); len(plans) != 1 || plans[0] != "Held" {
		t.Fatalf("ran plans = %v; want Held", plans)
	}
}

func TestResetDropsQueueOnly(t *testing.T) {
	s, _, exec, pub := newTestSelection("None")
	command(s, "ADD", "First", "Second", "Third")
	s.step()

	command(s, "RESET")
	exec.finish(true)
	s.step()
	s.step()

	if plans := exec.ranPlans(); len(plans) != 1 || plans[0] != "First" {
		t.Errorf("ran plans = %v; want just First", plans)
	}
	wantStatuses(t, pub, "First:queued", "Second:queued", "Third:queued",
		"First:executing", "First:complete")
}

func TestInitializeFailureRetries(t *testing.T) {
	s, _, exec, pub := newTestSelection("None")
	exec.initErr = fmt.Errorf("no plexilexec")

	command(s, "ADD", "Doomed")
	s.step()
	wantStatuses(t, pub, "Doomed:queued", "Doomed:failed")
	if plans := exec.ranPlans(); len(plans) != 0 {
		t.Fatalf("ran plans = %v", plans)
	}

	// A later plan initializes the executive again.
	exec.initErr = nil
	command(s, "ADD", "Retry")
	s.step()
	if len(exec.inits) != 1 {
		t.Errorf("inits = %v; want one successful initialize", exec.inits)
	}
	if plans := exec.ranPlans(); len(plans) != 1 || plans[0] != "Retry" {
		t.Errorf("ran plans = %v; want Retry", plans)
	}
}

func TestRunPlanFailureMovesOn(t *testing.T) {
	s, _, exec, pub := newTestSelection("None")
	command(s, "ADD", "Bad", "Good")

	exec.runErr = fmt.Errorf("missing plan file")
	s.step()
	wantStatuses(t, pub, "Bad:queued", "Good:queued", "Bad:failed")

	exec.runErr = nil
	s.step()
	if plans := exec.ranPlans(); len(plans) != 1 || plans[0] != "Good" {
		t.Errorf("ran plans = %v; want Good", plans)
	}
}

func TestUnknownCommand(t *testing.T) {
	s, _, _, pub := newTestSelection("None")
	command(s, "WARP", "somewhere")
	wantStatuses(t, pub, "WARP:unknown")
}

func TestCommandCallbackSignature(t *testing.T) {
	_, node, _, pub := newTestSelection("None")

	cb, ok := node.subs["/plexil_plan_selection_commands"].(func(*ow_plexil.PlannerCommand))
	if !ok {
		t.Fatalf("command callback has type %T", node.subs["/plexil_plan_selection_commands"])
	}
	cb(&ow_plexil.PlannerCommand{Command: "ADD", Plans: []string{"ViaTopic"}})
	wantStatuses(t, pub, "ViaTopic:queued")
}
