package database

import "context"

// CreateTask inserts t and returns its task_id. The referenced column is
// only checked when foreign keys are enforced.
func (s *Store) CreateTask(ctx context.Context, t NewTask) (int64, error) {
	return s.insert(ctx, tasksTable, map[string]any{
		"task_name":    t.TaskName,
		"description":  t.Description,
		"column_id":    t.ColumnID,
		"due_date":     t.DueDate,
		"created_date": t.CreatedDate,
		"assignee":     t.Assignee,
	})
}

func (s *Store) GetTask(ctx context.Context, id int64) (*Task, error) {
	return getOne[Task](ctx, s, tasksTable, id)
}

func (s *Store) ListTasks(ctx context.Context) ([]Task, error) {
	return listWhere[Task](ctx, s, tasksTable, nil)
}

func (s *Store) UpdateTask(ctx context.Context, id int64, p TaskPatch) error {
	return s.update(ctx, tasksTable, id, p.fields())
}

// DeleteTask removes task id. Assignee rows are not touched; with foreign
// keys enforced the delete fails while any still reference the task.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return s.delete(ctx, tasksTable, id)
}

func (s *Store) TaskAssignees(ctx context.Context, id int64) ([]Assignee, error) {
	return children[Assignee](ctx, s, tasksTable, id, assigneesTable, "task_id")
}
