package actionlib

import (
	"fmt"
	"sync"
	"time"

	"github.com/MilanAdd/ow-autonomy/msgs/actionlib_msgs"
	"github.com/MilanAdd/ow-autonomy/msgs/std_msgs"
	"github.com/edwinhayes/rosgo/ros"
)

const defaultStatusFrequency = 5.0

// actionServer tracks every goal sent to one action namespace and
// drives the status, feedback and result sides of the protocol.
type actionServer struct {
	node           ros.Node
	action         string
	actionType     ActionType
	goalCallback   interface{}
	cancelCallback interface{}

	statusPub   ros.Publisher
	resultPub   ros.Publisher
	feedbackPub ros.Publisher
	goalSub     ros.Subscriber
	cancelSub   ros.Subscriber

	handlersMutex   sync.Mutex
	handlers        map[string]*serverGoalHandle
	handlersTimeout ros.Duration
	lastCancel      ros.Time
	statusSeq       uint32

	statusFrequency float64
	shutdownChan    chan struct{}
	shutdownOnce    sync.Once
}

func newActionServer(node ros.Node, action string, actionType ActionType, goalCb, cancelCb interface{}) *actionServer {
	as := &actionServer{
		node:            node,
		action:          action,
		actionType:      actionType,
		goalCallback:    goalCb,
		cancelCallback:  cancelCb,
		handlers:        map[string]*serverGoalHandle{},
		handlersTimeout: ros.NewDuration(60, 0),
		statusFrequency: defaultStatusFrequency,
		shutdownChan:    make(chan struct{}),
	}

	if value, err := node.GetParam("actionlib_status_frequency"); err == nil {
		switch v := value.(type) {
		case float64:
			if v > 0 {
				as.statusFrequency = v
			}
		case int32:
			if v > 0 {
				as.statusFrequency = float64(v)
			}
		}
	}

	as.statusPub = node.NewPublisher(fmt.Sprintf("%s/status", action), actionlib_msgs.MsgGoalStatusArray)
	as.resultPub = node.NewPublisher(fmt.Sprintf("%s/result", action), actionType.ResultType())
	as.feedbackPub = node.NewPublisher(fmt.Sprintf("%s/feedback", action), actionType.FeedbackType())
	as.goalSub = node.NewSubscriber(fmt.Sprintf("%s/goal", action), actionType.GoalType(), as.internalGoalCallback)
	as.cancelSub = node.NewSubscriber(fmt.Sprintf("%s/cancel", action), actionlib_msgs.MsgGoalID, as.internalCancelCallback)
	return as
}

// Start publishes the status list at the configured frequency until the
// server is shut down. It blocks and is normally run as a goroutine.
func (as *actionServer) Start() {
	interval := time.Duration(float64(time.Second) / as.statusFrequency)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-as.shutdownChan:
			return
		case <-ticker.C:
			as.PublishStatus()
		}
	}
}

func (as *actionServer) Shutdown() {
	as.shutdownOnce.Do(func() {
		close(as.shutdownChan)
		as.goalSub.Shutdown()
		as.cancelSub.Shutdown()
		as.statusPub.Shutdown()
		as.resultPub.Shutdown()
		as.feedbackPub.Shutdown()
	})
}

func (as *actionServer) PublishResult(status actionlib_msgs.GoalStatus, result ros.Message) {
	msg := as.actionType.ResultType().NewMessage().(ActionResult)
	msg.SetHeader(std_msgs.Header{Stamp: ros.Now()})
	msg.SetStatus(status)
	if result != nil {
		msg.SetResult(result)
	}
	as.resultPub.Publish(msg)
}

func (as *actionServer) PublishFeedback(status actionlib_msgs.GoalStatus, feedback ros.Message) {
	msg := as.actionType.FeedbackType().NewMessage().(ActionFeedback)
	msg.SetHeader(std_msgs.Header{Stamp: ros.Now()})
	msg.SetStatus(status)
	if feedback != nil {
		msg.SetFeedback(feedback)
	}
	as.feedbackPub.Publish(msg)
}

// PublishStatus sends the status of every tracked goal and drops
// handles that finished longer than handlersTimeout ago.
func (as *actionServer) PublishStatus() {
	as.handlersMutex.Lock()
	defer as.handlersMutex.Unlock()

	now := ros.Now()
	var statuses []actionlib_msgs.GoalStatus
	for id, gh := range as.handlers {
		destroyAt := gh.GetHandlerDestructionTime()
		if !destroyAt.IsZero() {
			expiry := destroyAt.Add(as.handlersTimeout)
			if expiry.Cmp(now) <= 0 {
				delete(as.handlers, id)
				continue
			}
		}
		statuses = append(statuses, gh.GetGoalStatus())
	}

	as.statusSeq++
	as.statusPub.Publish(&actionlib_msgs.GoalStatusArray{
		Header:     std_msgs.Header{Seq: as.statusSeq, Stamp: now},
		StatusList: statuses,
	})
}

func (as *actionServer) RegisterGoalCallback(callback interface{}) {
	as.goalCallback = callback
}

func (as *actionServer) RegisterCancelCallback(callback interface{}) {
	as.cancelCallback = callback
}

func (as *actionServer) internalGoalCallback(goal ActionGoal, event ros.MessageEvent) {
	logger := as.node.Logger()
	goalID := goal.GetGoalId()

	as.handlersMutex.Lock()
	if existing, ok := as.handlers[goalID.Id]; ok {
		as.handlersMutex.Unlock()
		// A cancel that raced ahead of its goal leaves a RECALLING
		// handle behind; the goal arriving now is finished off.
		if existing.GetGoalStatus().Status == actionlib_msgs.RECALLING {
			status, err := existing.sm.transition(eventCancel, "goal cancelled before it reached the server")
			if err != nil {
				logger.Errorf("cannot cancel goal %s: %v", goalID.Id, err)
				return
			}
			existing.SetHandlerDestructionTime(ros.Now())
			as.PublishResult(status, nil)
		} else {
			logger.Debugf("goal %s is already tracked, ignoring duplicate", goalID.Id)
		}
		as.PublishStatus()
		return
	}

	gh := newServerGoalHandle(as, goal)
	as.handlers[goalID.Id] = gh
	lastCancel := as.lastCancel
	as.handlersMutex.Unlock()

	stamp := goalID.Stamp
	if !stamp.IsZero() && stamp.Cmp(lastCancel) <= 0 {
		if err := gh.SetCancelled(nil, "goal predates the last cancel request"); err != nil {
			logger.Error(err)
		}
		return
	}

	if err := invoke(as.goalCallback, ServerGoalHandler(gh), event); err != nil {
		logger.Error(err)
	}
}

func (as *actionServer) internalCancelCallback(goalID *actionlib_msgs.GoalID, event ros.MessageEvent) {
	logger := as.node.Logger()
	stamp := goalID.Stamp
	cancelAll := goalID.Id == "" && stamp.IsZero()

	as.handlersMutex.Lock()
	var matched []*serverGoalHandle
	idFound := false
	for id, gh := range as.handlers {
		handleStamp := gh.GetGoalId().Stamp
		beforeStamp := !stamp.IsZero() && handleStamp.Cmp(stamp) <= 0
		if cancelAll || id == goalID.Id || beforeStamp {
			matched = append(matched, gh)
			if id == goalID.Id {
				idFound = true
			}
		}
	}

	// Track a cancel for a goal the server has not seen yet so the
	// goal is recalled the moment it arrives.
	var tracker *serverGoalHandle
	if goalID.Id != "" && !idFound {
		pending := as.actionType.GoalType().NewMessage().(ActionGoal)
		pending.SetGoalId(*goalID)
		tracker = newServerGoalHandle(as, pending)
		as.handlers[goalID.Id] = tracker
	}

	if stamp.Cmp(as.lastCancel) > 0 {
		as.lastCancel = stamp
	}
	as.handlersMutex.Unlock()

	if tracker != nil {
		tracker.SetCancelRequested()
		tracker.SetHandlerDestructionTime(ros.Now())
	}

	for _, gh := range matched {
		if !gh.SetCancelRequested() {
			continue
		}
		if err := invoke(as.cancelCallback, ServerGoalHandler(gh), event); err != nil {
			logger.Error(err)
		}
	}
}
