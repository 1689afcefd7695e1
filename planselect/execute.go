package planselect

import (
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// execute dispatches a single operation carried as a JSON request in
// plans[0], e.g. {"operation": "TiltAntenna", "args": [30.0]}.
// Completion comes back through CommandStatus under the id assigned
// here.
func (s *Selection) execute(plans []string) {
	if len(plans) == 0 {
		log.Error("EXECUTE carries no operation")
		s.publishStatus("EXECUTE:failed")
		return
	}

	name, args, err := parseOperation([]byte(plans[0]))
	if err != nil {
		log.Errorf("EXECUTE: %v", err)
		s.publishStatus("EXECUTE:failed")
		return
	}

	s.mutex.Lock()
	s.nextID++
	id := s.nextID
	s.pending[id] = name
	s.mutex.Unlock()

	if err := s.adapter.ExecuteCommand(name, id, args); err != nil {
		log.Errorf("EXECUTE %s: %v", name, err)
		s.mutex.Lock()
		delete(s.pending, id)
		s.mutex.Unlock()
		s.publishStatus(name + ":failed")
	}
}

// CommandStatus receives command acknowledgements from the adapter
// and reports completion of the operations dispatched by EXECUTE.
func (s *Selection) CommandStatus(id int, success bool) {
	s.mutex.Lock()
	name, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	s.mutex.Unlock()

	if !ok {
		log.Debugf("command %d acknowledged: success=%t", id, success)
		return
	}
	if success {
		s.publishStatus(name + ":complete")
	} else {
		s.publishStatus(name + ":failed")
	}
}

// parseOperation decodes an EXECUTE operation request. The args array
// is optional; numbers, booleans and strings are accepted.
func parseOperation(data []byte) (string, []interface{}, error) {
	name, err := jsonparser.GetString(data, "operation")
	if err != nil {
		return "", nil, errors.Wrap(err, "operation name")
	}

	var args []interface{}
	var argErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if argErr != nil {
			return
		}
		if err != nil {
			argErr = err
			return
		}
		switch dataType {
		case jsonparser.Number:
			v, err := jsonparser.ParseFloat(value)
			if err != nil {
				argErr = err
				return
			}
			args = append(args, v)
		case jsonparser.Boolean:
			v, err := jsonparser.ParseBoolean(value)
			if err != nil {
				argErr = err
				return
			}
			args = append(args, v)
		case jsonparser.String:
			v, err := jsonparser.ParseString(value)
			if err != nil {
				argErr = err
				return
			}
			args = append(args, v)
		default:
			argErr = errors.Errorf("argument %d is a JSON %s", len(args), dataType)
		}
	}, "args")
	if argErr != nil {
		return "", nil, errors.Wrap(argErr, "operation args")
	}
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return "", nil, errors.Wrap(err, "operation args")
	}
	return name, args, nil
}
