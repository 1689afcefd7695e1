// Package telemetry carries named lander state between the ROS side
// and the plan executive. Values are published under a state name plus
// optional parameters and cached so late lookups see the last value.
package telemetry

import (
	"strings"
	"sync"
)

// Value is a plan-level state value: bool, int, float64 or string.
type Value interface{}

// Callback receives every published state change.
type Callback func(name string, value Value, params ...string)

// Bus fans published values out to listeners and remembers the last
// value per state name and parameter list.
type Bus struct {
	mutex     sync.RWMutex
	listeners []Callback
	cache     map[string]Value
}

func NewBus() *Bus {
	return &Bus{cache: map[string]Value{}}
}

// Notify registers a listener. Listeners run synchronously inside
// Publish, in registration order.
func (b *Bus) Notify(cb Callback) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.listeners = append(b.listeners, cb)
}

// Publish records the value and hands it to every listener.
func (b *Bus) Publish(name string, value Value, params ...string) {
	b.mutex.Lock()
	b.cache[cacheKey(name, params)] = value
	listeners := make([]Callback, len(b.listeners))
	copy(listeners, b.listeners)
	b.mutex.Unlock()

	for _, cb := range listeners {
		cb(name, value, params...)
	}
}

// Lookup returns the last value published under the name and
// parameters. ok is false when nothing was ever published there.
func (b *Bus) Lookup(name string, params ...string) (Value, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	value, ok := b.cache[cacheKey(name, params)]
	return value, ok
}

func cacheKey(name string, params []string) string {
	if len(params) == 0 {
		return name
	}
	return name + "\x00" + strings.Join(params, "\x00")
}
