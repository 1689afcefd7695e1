package actionlib

import (
	"fmt"
	"sync"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
)

// CommState is the client-side protocol state of one goal.
type CommState uint8

const (
	WaitingForGoalAck CommState = iota
	Pending
	Active
	WaitingForResult
	WaitingForCancelAck
	Recalling
	Preempting
	Done
	Lost
)

func (s CommState) String() string {
	switch s {
	case WaitingForGoalAck:
		return "WAITING_FOR_GOAL_ACK"
	case Pending:
		return "PENDING"
	case Active:
		return "ACTIVE"
	case WaitingForResult:
		return "WAITING_FOR_RESULT"
	case WaitingForCancelAck:
		return "WAITING_FOR_CANCEL_ACK"
	case Recalling:
		return "RECALLING"
	case Preempting:
		return "PREEMPTING"
	case Done:
		return "DONE"
	case Lost:
		return "LOST"
	default:
		return fmt.Sprintf("CommState(%d)", uint8(s))
	}
}

// clientTransitions maps the current comm state and a reported goal
// status to the chain of comm states the goal walks through, in order.
// A present status with an empty chain means no change; an absent
// status is a protocol violation.
var clientTransitions = map[CommState]map[uint8][]CommState{
	WaitingForGoalAck: {
		actionlib_msgs.PENDING:    {Pending},
		actionlib_msgs.ACTIVE:     {Active},
		actionlib_msgs.REJECTED:   {Pending, WaitingForResult},
		actionlib_msgs.RECALLING:  {Pending, Recalling},
		actionlib_msgs.RECALLED:   {Pending, WaitingForResult},
		actionlib_msgs.PREEMPTED:  {Active, Preempting, WaitingForResult},
		actionlib_msgs.SUCCEEDED:  {Active, WaitingForResult},
		actionlib_msgs.ABORTED:    {Active, WaitingForResult},
		actionlib_msgs.PREEMPTING: {Active, Preempting},
	},
	Pending: {
		actionlib_msgs.PENDING:    nil,
		actionlib_msgs.ACTIVE:     {Active},
		actionlib_msgs.REJECTED:   {WaitingForResult},
		actionlib_msgs.RECALLING:  {Recalling},
		actionlib_msgs.RECALLED:   {Recalling, WaitingForResult},
		actionlib_msgs.PREEMPTED:  {Active, Preempting, WaitingForResult},
		actionlib_msgs.SUCCEEDED:  {Active, WaitingForResult},
		actionlib_msgs.ABORTED:    {Active, WaitingForResult},
		actionlib_msgs.PREEMPTING: {Active, Preempting},
	},
	Active: {
		actionlib_msgs.ACTIVE:     nil,
		actionlib_msgs.PREEMPTED:  {Preempting, WaitingForResult},
		actionlib_msgs.SUCCEEDED:  {WaitingForResult},
		actionlib_msgs.ABORTED:    {WaitingForResult},
		actionlib_msgs.PREEMPTING: {Preempting},
	},
	WaitingForResult: {
		actionlib_msgs.PENDING:   nil,
		actionlib_msgs.ACTIVE:    nil,
		actionlib_msgs.REJECTED:  nil,
		actionlib_msgs.RECALLED:  nil,
		actionlib_msgs.PREEMPTED: nil,
		actionlib_msgs.SUCCEEDED: nil,
		actionlib_msgs.ABORTED:   nil,
	},
	WaitingForCancelAck: {
		actionlib_msgs.PENDING:    nil,
		actionlib_msgs.ACTIVE:     nil,
		actionlib_msgs.REJECTED:   {WaitingForResult},
		actionlib_msgs.RECALLING:  {Recalling},
		actionlib_msgs.RECALLED:   {Recalling, WaitingForResult},
		actionlib_msgs.PREEMPTED:  {Preempting, WaitingForResult},
		actionlib_msgs.SUCCEEDED:  {Preempting, WaitingForResult},
		actionlib_msgs.ABORTED:    {Preempting, WaitingForResult},
		actionlib_msgs.PREEMPTING: {Preempting},
	},
	Recalling: {
		actionlib_msgs.REJECTED:   {WaitingForResult},
		actionlib_msgs.RECALLING:  nil,
		actionlib_msgs.RECALLED:   {WaitingForResult},
		actionlib_msgs.PREEMPTED:  {Preempting, WaitingForResult},
		actionlib_msgs.SUCCEEDED:  {Preempting, WaitingForResult},
		actionlib_msgs.ABORTED:    {Preempting, WaitingForResult},
		actionlib_msgs.PREEMPTING: {Preempting},
	},
	Preempting: {
		actionlib_msgs.PREEMPTED:  {WaitingForResult},
		actionlib_msgs.SUCCEEDED:  {WaitingForResult},
		actionlib_msgs.ABORTED:    {WaitingForResult},
		actionlib_msgs.PREEMPTING: nil,
	},
	Done: {
		actionlib_msgs.REJECTED:  nil,
		actionlib_msgs.RECALLED:  nil,
		actionlib_msgs.PREEMPTED: nil,
		actionlib_msgs.SUCCEEDED: nil,
		actionlib_msgs.ABORTED:   nil,
	},
}

// clientStateMachine holds the comm state of one goal.
type clientStateMachine struct {
	mutex sync.RWMutex
	state CommState
}

func newClientStateMachine() *clientStateMachine {
	return &clientStateMachine{state: WaitingForGoalAck}
}

func (sm *clientStateMachine) getState() CommState {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.state
}

func (sm *clientStateMachine) setState(state CommState) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.state = state
}

// transitionsFor reports which comm states a status update walks the
// goal through from the current state.
func (sm *clientStateMachine) transitionsFor(goalStatus uint8) ([]CommState, error) {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	allowed, ok := clientTransitions[sm.state]
	if !ok {
		return nil, fmt.Errorf("no transitions out of comm state %v", sm.state)
	}
	steps, ok := allowed[goalStatus]
	if !ok {
		return nil, fmt.Errorf("invalid goal status %d in comm state %v", goalStatus, sm.state)
	}
	return steps, nil
}
