package actionlib

import (
	"fmt"
	"reflect"
)

// invoke calls a user callback with as many of the given arguments as
// its signature accepts. Callbacks follow the rosgo convention of
// taking a prefix of the available arguments.
func invoke(callback interface{}, args ...interface{}) error {
	if callback == nil {
		return nil
	}

	fun := reflect.ValueOf(callback)
	if fun.Kind() != reflect.Func {
		return fmt.Errorf("callback is %T, not a function", callback)
	}

	need := fun.Type().NumIn()
	if need > len(args) {
		return fmt.Errorf("callback expects %d arguments but only %d are available", need, len(args))
	}

	in := make([]reflect.Value, need)
	for i := 0; i < need; i++ {
		v := reflect.ValueOf(args[i])
		if !v.IsValid() {
			v = reflect.Zero(fun.Type().In(i))
		}
		in[i] = v
	}
	fun.Call(in)
	return nil
}
