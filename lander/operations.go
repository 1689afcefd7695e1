package lander

import (
	"sync"

	"github.com/MilanAdd/ow-autonomy/telemetry"
)

// IdleID is the command id of an operation with nothing in flight.
const IdleID = -1

// StatusFunc receives the acknowledgement when a commanded operation
// finishes.
type StatusFunc func(id int, success bool)

// operations tracks which lander operations run under which command id
// and reflects every change onto the telemetry bus.
type operations struct {
	mutex   sync.Mutex
	running map[string]int
	status  StatusFunc
	bus     *telemetry.Bus
}

func newOperations(bus *telemetry.Bus) *operations {
	return &operations{
		running: map[string]int{},
		bus:     bus,
	}
}

func (ops *operations) setStatusFunc(fn StatusFunc) {
	ops.mutex.Lock()
	defer ops.mutex.Unlock()
	ops.status = fn
}

func (ops *operations) register(name string) {
	ops.mutex.Lock()
	defer ops.mutex.Unlock()
	ops.running[name] = IdleID
}

func (ops *operations) isOperation(name string) bool {
	ops.mutex.Lock()
	defer ops.mutex.Unlock()
	_, ok := ops.running[name]
	return ok
}

// runningState reports whether the operation is running and whether it
// is known at all.
func (ops *operations) runningState(name string) (running, known bool) {
	ops.mutex.Lock()
	defer ops.mutex.Unlock()
	id, ok := ops.running[name]
	return ok && id != IdleID, ok
}

// markRunning records the command id of an operation about to start.
// A request for an operation already in flight is refused.
func (ops *operations) markRunning(name string, id int) bool {
	ops.mutex.Lock()
	current, ok := ops.running[name]
	if !ok {
		ops.mutex.Unlock()
		log.Errorf("markRunning: unknown operation %s", name)
		return false
	}
	if current != IdleID {
		ops.mutex.Unlock()
		log.Warnf("%s already running, ignoring duplicate request.", name)
		return false
	}
	ops.running[name] = id
	ops.mutex.Unlock()

	ops.bus.Publish("Running", true, name)
	return true
}

// markFinished sets the operation idle, reflects that on the bus and
// acknowledges the command that started it.
func (ops *operations) markFinished(name string, id int, success bool) {
	ops.mutex.Lock()
	current, ok := ops.running[name]
	if !ok {
		ops.mutex.Unlock()
		log.Errorf("markFinished: unknown operation %s", name)
		return
	}
	if current == IdleID {
		log.Warnf("%s was not running. Should never happen.", name)
	}
	ops.running[name] = IdleID
	status := ops.status
	ops.mutex.Unlock()

	ops.bus.Publish("Running", false, name)
	ops.bus.Publish("Finished", true, name)
	if id != IdleID && status != nil {
		status(id, success)
	}
}
