package testutil

import (
	"time"

	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/util"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask(id int64) *TaskBuilder {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &TaskBuilder{
		task: models.Task{
			ID:        id,
			Title:     "Test Task",
			Status:    models.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithDescription(d string) *TaskBuilder {
	b.task.Description = util.Ptr(d)
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

// DependsOn adds an edge from this task to id.
func (b *TaskBuilder) DependsOn(id int64, title string) *TaskBuilder {
	b.task.Dependencies = append(b.task.Dependencies, models.Dependency{
		ID:             b.task.ID*1000 + id,
		DependsOn:      id,
		DependsOnTitle: title,
	})
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// Chain builds tasks 1..n with no edges.
func Chain(n int) []models.Task {
	out := make([]models.Task, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewTask(int64(i)).Build())
	}
	return out
}

// ScenarioTasks is four tasks with edges 2->1, 3->1 and 4->2.
func ScenarioTasks() []models.Task {
	return []models.Task{
		NewTask(1).WithTitle("Design").Build(),
		NewTask(2).WithTitle("Build").DependsOn(1, "Design").Build(),
		NewTask(3).WithTitle("Docs").DependsOn(1, "Design").Build(),
		NewTask(4).WithTitle("Ship").WithStatus(models.StatusBlocked).DependsOn(2, "Build").Build(),
	}
}
