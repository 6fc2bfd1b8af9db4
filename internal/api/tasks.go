package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/akyairhashvil/taskgraph/internal/models"
)

// ListTasks fetches every task. The service may answer with a bare array or
// a paginated {"results": [...]} envelope.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var raw json.RawMessage
	if err := c.do(ctx, OpListTasks, http.MethodGet, "/tasks/", nil, &raw); err != nil {
		return nil, err
	}
	tasks, err := decodeTaskList(raw)
	if err != nil {
		return nil, transportError(OpListTasks, err)
	}
	return tasks, nil
}

func decodeTaskList(raw json.RawMessage) ([]models.Task, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []models.Task{}, nil
	}
	if trimmed[0] == '[' {
		var tasks []models.Task
		if err := json.Unmarshal(trimmed, &tasks); err != nil {
			return nil, fmt.Errorf("decode task list: %w", err)
		}
		return tasks, nil
	}
	var page struct {
		Results []models.Task `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("decode task page: %w", err)
	}
	if page.Results == nil {
		page.Results = []models.Task{}
	}
	return page.Results, nil
}

// GetTask fetches one task.
func (c *Client) GetTask(ctx context.Context, id int64) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, OpGetTask, http.MethodGet, taskPath(id), nil, &task)
	return task, err
}

// CreateTask creates a task and returns the stored copy.
func (c *Client) CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, OpCreateTask, http.MethodPost, "/tasks/", in, &task)
	return task, err
}

// UpdateTask applies a partial update.
func (c *Client) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, OpUpdateTask, http.MethodPatch, taskPath(id), patch, &task)
	return task, err
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, OpDeleteTask, http.MethodDelete, taskPath(id), nil, nil)
}

// AddDependency records that taskID depends on dependsOnID. The service
// rejects self edges and cycles.
func (c *Client) AddDependency(ctx context.Context, taskID, dependsOnID int64) error {
	body := map[string]int64{"depends_on_id": dependsOnID}
	return c.do(ctx, OpAddDependency, http.MethodPost, taskPath(taskID)+"add_dependency/", body, nil)
}

// RemoveDependency drops the taskID -> dependsOnID edge.
func (c *Client) RemoveDependency(ctx context.Context, taskID, dependsOnID int64) error {
	q := url.Values{"depends_on_id": {strconv.FormatInt(dependsOnID, 10)}}
	path := taskPath(taskID) + "remove_dependency/?" + q.Encode()
	return c.do(ctx, OpRemoveDependency, http.MethodDelete, path, nil, nil)
}

// CheckCircularDependency asks whether adding taskID -> dependsOnID would close a cycle.
func (c *Client) CheckCircularDependency(ctx context.Context, taskID, dependsOnID int64) (models.CycleCheck, error) {
	body := map[string]int64{"task_id": taskID, "depends_on_id": dependsOnID}
	var out models.CycleCheck
	err := c.do(ctx, OpCheckCircular, http.MethodPost, "/tasks/check_circular_dependency/", body, &out)
	return out, err
}

// GraphData fetches the node and edge lists.
func (c *Client) GraphData(ctx context.Context) (models.GraphData, error) {
	var out models.GraphData
	err := c.do(ctx, OpGraphData, http.MethodGet, "/tasks/graph_data/", nil, &out)
	return out, err
}

func taskPath(id int64) string {
	return "/tasks/" + strconv.FormatInt(id, 10) + "/"
}
