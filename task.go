package gpswox

import (
	"context"
	"net/http"
)

var taskEndpoints = struct {
	list, get, add, edit, destroy, signature, statuses, priorities endpoint
}{
	list:       endpoint{http.MethodGet, "api/get_tasks", inQuery},
	get:        endpoint{http.MethodGet, "api/get_task/%d", inQuery},
	add:        endpoint{http.MethodPost, "api/add_task", inJSON},
	edit:       endpoint{http.MethodPost, "api/edit_task/%d", inJSON},
	destroy:    endpoint{http.MethodPost, "api/destroy_task", inJSON},
	signature:  endpoint{http.MethodGet, "api/get_task_signature/%d", inQuery},
	statuses:   endpoint{http.MethodGet, "api/get_tasks_statuses", inQuery},
	priorities: endpoint{http.MethodGet, "api/get_tasks_priorities", inQuery},
}

// TaskService manages delivery tasks.
type TaskService struct {
	r Requester
}

// GetTasks lists tasks matching filters.
func (s *TaskService) GetTasks(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.list.request(filters))
}

// GetTask returns one task.
func (s *TaskService) GetTask(ctx context.Context, taskID int, params Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.get.request(params, taskID))
}

// AddTask creates a task.
func (s *TaskService) AddTask(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.add.request(data))
}

// EditTask updates a task.
func (s *TaskService) EditTask(ctx context.Context, taskID int, data Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.edit.request(data, taskID))
}

// DestroyTask deletes a task.
func (s *TaskService) DestroyTask(ctx context.Context, taskID int) (any, error) {
	return s.r.Do(ctx, taskEndpoints.destroy.request(Params{"task_id": taskID}))
}

// GetTaskSignature returns the signature captured for a task status.
func (s *TaskService) GetTaskSignature(ctx context.Context, taskStatusID int, params Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.signature.request(params, taskStatusID))
}

// GetTaskStatuses lists task statuses.
func (s *TaskService) GetTaskStatuses(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.statuses.request(params))
}

// GetTaskPriorities lists task priorities.
func (s *TaskService) GetTaskPriorities(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, taskEndpoints.priorities.request(params))
}
