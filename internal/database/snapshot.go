package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/models"
)

// SaveSnapshot replaces the cached task list with tasks, keeping their order.
// source records where the list came from (the API base URL).
func (d *Database) SaveSnapshot(ctx context.Context, source string, tasks []models.Task) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_deps"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
			return err
		}
		taskStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO tasks (id, position, title, description, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer taskStmt.Close()
		depStmt, err := tx.PrepareContext(ctx, `
			INSERT OR IGNORE INTO task_deps (id, task_id, depends_on_id, depends_on_title, created_at)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer depStmt.Close()

		for i, t := range tasks {
			if _, err := taskStmt.ExecContext(ctx, t.ID, i, t.Title, optional(t.Description), string(t.Status), nullTime(t.CreatedAt), nullTime(t.UpdatedAt)); err != nil {
				return err
			}
		}
		for _, t := range tasks {
			for _, dep := range t.Dependencies {
				if _, err := depStmt.ExecContext(ctx, nullID(dep.ID), t.ID, dep.DependsOn, nullText(dep.DependsOnTitle), nullTime(dep.CreatedAt)); err != nil {
					return err
				}
			}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshot_meta (id, source, saved_at) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET source = excluded.source, saved_at = excluded.saved_at`,
			source, time.Now().UTC())
		return err
	})
	return wrapSnapshotErr("save", err)
}

// Snapshot is a cached task list and when it was written.
type Snapshot struct {
	Source  string
	SavedAt time.Time
	Tasks   []models.Task
}

// LoadSnapshot returns the cached task list in its original order, with
// dependencies and dependents rebuilt from the edge table. ErrNoSnapshot is
// returned when nothing has been saved yet.
func (d *Database) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var snap Snapshot
	var source *string
	var savedAt *time.Time
	err := d.DB.QueryRowContext(ctx, "SELECT source, saved_at FROM snapshot_meta WHERE id = 1").Scan(&source, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrNoSnapshot
	}
	if err != nil {
		return snap, wrapSnapshotErr("load", err)
	}
	snap.Source = valueOr(source)
	snap.SavedAt = valueOr(savedAt)

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return snap, wrapSnapshotErr("load", err)
	}
	defer rows.Close()

	snap.Tasks = []models.Task{}
	index := make(map[int64]int)
	for rows.Next() {
		var t models.Task
		var status string
		var createdAt, updatedAt *time.Time
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &status, &createdAt, &updatedAt); err != nil {
			return snap, wrapSnapshotErr("load", err)
		}
		t.Status = models.TaskStatus(status)
		t.CreatedAt = valueOr(createdAt)
		t.UpdatedAt = valueOr(updatedAt)
		index[t.ID] = len(snap.Tasks)
		snap.Tasks = append(snap.Tasks, t)
	}
	if err := rows.Err(); err != nil {
		return snap, wrapSnapshotErr("load", err)
	}
	if err := d.loadDeps(ctx, snap.Tasks, index); err != nil {
		return snap, wrapSnapshotErr("load", err)
	}
	return snap, nil
}

func (d *Database) loadDeps(ctx context.Context, tasks []models.Task, index map[int64]int) error {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, task_id, depends_on_id, depends_on_title, created_at
		FROM task_deps ORDER BY rowid ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var depID *int64
		var taskID, dependsOn int64
		var title *string
		var createdAt *time.Time
		if err := rows.Scan(&depID, &taskID, &dependsOn, &title, &createdAt); err != nil {
			return err
		}
		owner, ok := index[taskID]
		if !ok {
			continue
		}
		dep := models.Dependency{
			ID:             valueOr(depID),
			DependsOn:      dependsOn,
			DependsOnTitle: valueOr(title),
			CreatedAt:      valueOr(createdAt),
		}
		tasks[owner].Dependencies = append(tasks[owner].Dependencies, dep)
		if target, ok := index[dependsOn]; ok {
			tasks[target].DependentTasks = append(tasks[target].DependentTasks, models.DependentTask{
				ID:     tasks[owner].ID,
				Title:  tasks[owner].Title,
				Status: tasks[owner].Status,
			})
		}
	}
	return rows.Err()
}

// ClearSnapshot forgets the cached task list.
func (d *Database) ClearSnapshot(ctx context.Context) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, q := range []string{"DELETE FROM task_deps", "DELETE FROM tasks", "DELETE FROM snapshot_meta"} {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapSnapshotErr("clear", err)
}
