package api

import (
	"encoding/json"
	"errors"
)

// Op names a round trip to the task service.
type Op string

const (
	OpListTasks        Op = "list tasks"
	OpGetTask          Op = "get task"
	OpCreateTask       Op = "create task"
	OpUpdateTask       Op = "update task"
	OpDeleteTask       Op = "delete task"
	OpAddDependency    Op = "add dependency"
	OpRemoveDependency Op = "remove dependency"
	OpCheckCircular    Op = "check circular dependency"
	OpGraphData        Op = "graph data"
)

// Fallback is the message shown when the service gives no usable reason.
func (op Op) Fallback() string {
	switch op {
	case OpListTasks:
		return "Failed to fetch tasks"
	case OpGetTask:
		return "Failed to fetch task"
	case OpCreateTask:
		return "Failed to create task"
	case OpUpdateTask:
		return "Failed to update task"
	case OpDeleteTask:
		return "Failed to delete task"
	case OpAddDependency:
		return "Failed to add dependency"
	case OpRemoveDependency:
		return "Failed to remove dependency"
	case OpCheckCircular:
		return "Failed to check circular dependency"
	case OpGraphData:
		return "Failed to fetch graph data"
	default:
		return "Request failed"
	}
}

// messageFields lists the error body fields consulted for op, most specific
// first. Ops without fields always use the fallback.
func (op Op) messageFields() []string {
	switch op {
	case OpCreateTask, OpUpdateTask:
		return []string{"detail", "error"}
	case OpDeleteTask, OpAddDependency:
		return []string{"error", "detail"}
	default:
		return nil
	}
}

// Error is every failure the client reports: transport errors, non-2xx
// responses with a reason in the body, and non-2xx responses without one.
// Error() is the user-visible message.
type Error struct {
	Op      Op
	Status  int // 0 for transport failures
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Transport reports whether the request never got an HTTP response.
func (e *Error) Transport() bool { return e != nil && e.Status == 0 }

// ErrUnexpectedStatus is wrapped by Error when the service answered non-2xx.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Message returns the user-visible text for err, falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func statusError(op Op, status int, body []byte) *Error {
	msg := op.Fallback()
	if fields := op.messageFields(); len(fields) > 0 && len(body) > 0 {
		var parsed map[string]any
		if json.Unmarshal(body, &parsed) == nil {
			for _, f := range fields {
				if s, ok := parsed[f].(string); ok && s != "" {
					msg = s
					break
				}
			}
		}
	}
	return &Error{Op: op, Status: status, Message: msg, Err: ErrUnexpectedStatus}
}

func transportError(op Op, err error) *Error {
	return &Error{Op: op, Message: op.Fallback(), Err: err}
}
