package actionlib

import (
	"fmt"
	"sync"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
)

// goalEvent is a server-side transition request on a tracked goal.
type goalEvent uint8

const (
	eventReject goalEvent = iota
	eventCancelRequest
	eventCancel
	eventAccept
	eventSucceed
	eventAbort
)

func (e goalEvent) String() string {
	switch e {
	case eventReject:
		return "Reject"
	case eventCancelRequest:
		return "CancelRequest"
	case eventCancel:
		return "Cancel"
	case eventAccept:
		return "Accept"
	case eventSucceed:
		return "Succeed"
	case eventAbort:
		return "Abort"
	default:
		return fmt.Sprintf("goalEvent(%d)", uint8(e))
	}
}

// serverTransitions maps current goal status and event to the next
// status. Statuses absent from the outer map are terminal: events
// arriving after a goal has finished are ignored.
var serverTransitions = map[uint8]map[goalEvent]uint8{
	actionlib_msgs.PENDING: {
		eventReject:        actionlib_msgs.REJECTED,
		eventCancelRequest: actionlib_msgs.RECALLING,
		eventCancel:        actionlib_msgs.RECALLED,
		eventAccept:        actionlib_msgs.ACTIVE,
	},
	actionlib_msgs.RECALLING: {
		eventReject: actionlib_msgs.REJECTED,
		eventCancel: actionlib_msgs.RECALLED,
		eventAccept: actionlib_msgs.PREEMPTING,
	},
	actionlib_msgs.ACTIVE: {
		eventSucceed:       actionlib_msgs.SUCCEEDED,
		eventCancelRequest: actionlib_msgs.PREEMPTING,
		eventCancel:        actionlib_msgs.PREEMPTED,
		eventAbort:         actionlib_msgs.ABORTED,
	},
	actionlib_msgs.PREEMPTING: {
		eventSucceed: actionlib_msgs.SUCCEEDED,
		eventCancel:  actionlib_msgs.PREEMPTED,
		eventAbort:   actionlib_msgs.ABORTED,
	},
}

// serverStateMachine tracks the status of one goal on the server side.
type serverStateMachine struct {
	mutex  sync.RWMutex
	status actionlib_msgs.GoalStatus
}

func newServerStateMachine(goalID actionlib_msgs.GoalID) *serverStateMachine {
	return &serverStateMachine{
		status: actionlib_msgs.GoalStatus{
			GoalId: goalID,
			Status: actionlib_msgs.PENDING,
		},
	}
}

func (sm *serverStateMachine) transition(event goalEvent, text string) (actionlib_msgs.GoalStatus, error) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	allowed, ok := serverTransitions[sm.status.Status]
	if !ok {
		// Terminal status: nothing left to do for this goal.
		return sm.status, nil
	}

	next, ok := allowed[event]
	if !ok {
		return sm.status, fmt.Errorf("invalid transition %v from state %d", event, sm.status.Status)
	}

	sm.status.Status = next
	sm.status.Text = text
	return sm.status, nil
}

func (sm *serverStateMachine) getStatus() actionlib_msgs.GoalStatus {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.status
}
