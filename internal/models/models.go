package models

import "time"

// TaskStatus enumerates the states a task can be in.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusBlocked    TaskStatus = "blocked"
)

// Statuses lists every status in cycling order.
var Statuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusBlocked}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Next returns the status after s in cycling order.
func (s TaskStatus) Next() TaskStatus {
	for i, v := range Statuses {
		if v == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusPending
}

// Label is the human-readable form of the status.
func (s TaskStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusBlocked:
		return "Blocked"
	default:
		return string(s)
	}
}

// Task is a unit of work owned by the task service.
type Task struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    *string         `json:"description"`
	Status         TaskStatus      `json:"status"`
	Dependencies   []Dependency    `json:"dependencies"`
	DependentTasks []DependentTask `json:"dependent_tasks"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Dependency says the owning task waits on DependsOn.
type Dependency struct {
	ID             int64     `json:"id"`
	DependsOn      int64     `json:"depends_on"`
	DependsOnTitle string    `json:"depends_on_title"`
	CreatedAt      time.Time `json:"created_at"`
}

// DependentTask is a task that waits on the owning task.
type DependentTask struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// Edge is a directed dependency: TaskID cannot proceed until DependsOnID is resolved.
type Edge struct {
	TaskID      int64 `json:"task_id"`
	DependsOnID int64 `json:"depends_on_id"`
}

// EdgesFromTasks flattens every task's dependency list into edges, in task order.
func EdgesFromTasks(tasks []Task) []Edge {
	var edges []Edge
	for _, t := range tasks {
		for _, d := range t.Dependencies {
			edges = append(edges, Edge{TaskID: t.ID, DependsOnID: d.DependsOn})
		}
	}
	return edges
}

// TaskInput is the body for creating a task.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskPatch carries the fields of a partial update; nil fields are left alone.
type TaskPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// CycleCheck is the service's answer to "would this edge close a cycle".
type CycleCheck struct {
	HasCycle bool    `json:"has_cycle"`
	Path     []int64 `json:"path"`
}

// GraphNode is a task as returned by the graph-data endpoint.
type GraphNode struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// GraphData is the node and edge list returned by the graph-data endpoint.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []Edge      `json:"edges"`
}
