package plexil

import (
	"sync"

	"github.com/MilanAdd/ow-autonomy/telemetry"
	"github.com/pkg/errors"
)

// CommandFunc starts one plan command. Completion is acknowledged
// separately through the adapter's ack function, keyed by id.
type CommandFunc func(id int, args []interface{}) error

// LookupFunc answers one named lookup.
type LookupFunc func(params ...string) (telemetry.Value, bool)

// AckFunc receives command completion acknowledgements.
type AckFunc func(id int, success bool)

// Adapter is the dispatch table between plan-level commands/lookups
// and the lander. Lookups with no registered handler fall back to the
// last value published on the telemetry bus.
type Adapter struct {
	mutex    sync.RWMutex
	commands map[string]CommandFunc
	lookups  map[string]LookupFunc
	ack      AckFunc
	bus      *telemetry.Bus
}

func NewAdapter(bus *telemetry.Bus) *Adapter {
	return &Adapter{
		commands: map[string]CommandFunc{},
		lookups:  map[string]LookupFunc{},
		bus:      bus,
	}
}

func (a *Adapter) RegisterCommand(name string, fn CommandFunc) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.commands[name] = fn
}

func (a *Adapter) RegisterLookup(name string, fn LookupFunc) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.lookups[name] = fn
}

// SetAckFunc registers where command acknowledgements go.
func (a *Adapter) SetAckFunc(fn AckFunc) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.ack = fn
}

// Ack forwards a command acknowledgement. Operations that settle
// later (service and action calls) reach this through the lander's
// status callback; immediate commands call it directly.
func (a *Adapter) Ack(id int, success bool) {
	a.mutex.RLock()
	fn := a.ack
	a.mutex.RUnlock()
	if fn != nil {
		fn(id, success)
	}
}

// Commands lists the registered command names.
func (a *Adapter) Commands() []string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	return names
}

// ExecuteCommand dispatches a plan command to its handler.
func (a *Adapter) ExecuteCommand(name string, id int, args []interface{}) error {
	a.mutex.RLock()
	fn, ok := a.commands[name]
	a.mutex.RUnlock()
	if !ok {
		return errors.Errorf("ExecuteCommand: unknown command %s", name)
	}
	return fn(id, args)
}

// LookupNow answers a state lookup.
func (a *Adapter) LookupNow(name string, params ...string) (telemetry.Value, bool) {
	a.mutex.RLock()
	fn, ok := a.lookups[name]
	a.mutex.RUnlock()
	if ok {
		return fn(params...)
	}
	return a.bus.Lookup(name, params...)
}

// floatArg reads args[i] as a float64, or def when absent.
func floatArg(args []interface{}, i int, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, errors.Errorf("argument %d is %T, not a number", i, args[i])
}

// boolArg reads args[i] as a bool, or def when absent.
func boolArg(args []interface{}, i int, def bool) (bool, error) {
	if i >= len(args) {
		return def, nil
	}
	if v, ok := args[i].(bool); ok {
		return v, nil
	}
	return false, errors.Errorf("argument %d is %T, not a bool", i, args[i])
}

// stringArg reads args[i] as a string, or def when absent.
func stringArg(args []interface{}, i int, def string) (string, error) {
	if i >= len(args) {
		return def, nil
	}
	if v, ok := args[i].(string); ok {
		return v, nil
	}
	return "", errors.Errorf("argument %d is %T, not a string", i, args[i])
}
