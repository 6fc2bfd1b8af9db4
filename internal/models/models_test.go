package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTaskStatusConstants(t *testing.T) {
	if StatusPending != "pending" {
		t.Fatalf("StatusPending = %q", StatusPending)
	}
	if StatusInProgress != "in_progress" {
		t.Fatalf("StatusInProgress = %q", StatusInProgress)
	}
	if StatusCompleted != "completed" {
		t.Fatalf("StatusCompleted = %q", StatusCompleted)
	}
	if StatusBlocked != "blocked" {
		t.Fatalf("StatusBlocked = %q", StatusBlocked)
	}
}

func TestTaskStatusNextCycles(t *testing.T) {
	s := StatusPending
	seen := []TaskStatus{s}
	for i := 0; i < 4; i++ {
		s = s.Next()
		seen = append(seen, s)
	}
	want := []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusBlocked, StatusPending}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("cycle = %v, want %v", seen, want)
	}
	if TaskStatus("bogus").Valid() {
		t.Fatalf("expected bogus status to be invalid")
	}
	if TaskStatus("bogus").Next() != StatusPending {
		t.Fatalf("expected unknown status to restart at pending")
	}
}

func TestTaskZeroValues(t *testing.T) {
	var task Task
	if task.Description != nil {
		t.Fatalf("expected nil description by default")
	}
	if len(task.Dependencies) != 0 || len(task.DependentTasks) != 0 {
		t.Fatalf("expected no dependencies by default")
	}
}

func TestEdgesFromTasks(t *testing.T) {
	tasks := []Task{
		{ID: 1},
		{ID: 2, Dependencies: []Dependency{{DependsOn: 1}}},
		{ID: 3, Dependencies: []Dependency{{DependsOn: 1}, {DependsOn: 2}}},
	}
	got := EdgesFromTasks(tasks)
	want := []Edge{{2, 1}, {3, 1}, {3, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EdgesFromTasks = %v, want %v", got, want)
	}
}

func TestTaskPatchOmitsUnsetFields(t *testing.T) {
	status := StatusBlocked
	raw, err := json.Marshal(TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `{"status":"blocked"}` {
		t.Fatalf("patch body = %s", raw)
	}
}
