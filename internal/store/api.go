package store

import (
	"context"

	"github.com/akyairhashvil/taskgraph/internal/database"
	"github.com/akyairhashvil/taskgraph/internal/models"
)

//go:generate mockgen -source=api.go -destination=mock_taskapi_test.go -package=store

// TaskAPI is the task service as the store sees it. *api.Client implements it.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	AddDependency(ctx context.Context, taskID, dependsOnID int64) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID int64) error
	CheckCircularDependency(ctx context.Context, taskID, dependsOnID int64) (models.CycleCheck, error)
	GraphData(ctx context.Context) (models.GraphData, error)
}

// Snapshotter persists the last good task list. *database.Database implements it.
type Snapshotter interface {
	SaveSnapshot(ctx context.Context, source string, tasks []models.Task) error
	LoadSnapshot(ctx context.Context) (database.Snapshot, error)
}
