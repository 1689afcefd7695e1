package lander

import (
	"sync"

	"github.com/edwinhayes/rosgo/ros"
)

// latchedPublisher remembers the last message and replays it to every
// subscriber that connects later, standing in for a ROS latched topic.
// The antenna controllers may come up after us; without the replay
// they would miss the command that is already in effect.
type latchedPublisher struct {
	mutex sync.Mutex
	pub   ros.Publisher
	last  ros.Message
}

func newLatchedPublisher(node ros.Node, topic string, msgType ros.MessageType) *latchedPublisher {
	lp := &latchedPublisher{}
	lp.pub = node.NewPublisherWithCallbacks(topic, msgType, lp.onConnect, nil)
	return lp
}

func (lp *latchedPublisher) onConnect(pub ros.SingleSubscriberPublisher) {
	lp.mutex.Lock()
	last := lp.last
	lp.mutex.Unlock()
	if last != nil {
		pub.Publish(last)
	}
}

func (lp *latchedPublisher) Publish(msg ros.Message) {
	lp.mutex.Lock()
	lp.last = msg
	lp.mutex.Unlock()
	lp.pub.Publish(msg)
}

func (lp *latchedPublisher) Shutdown() {
	lp.pub.Shutdown()
}
