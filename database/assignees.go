package database

import "context"

func (s *Store) CreateAssignee(ctx context.Context, a NewAssignee) (int64, error) {
	return s.insert(ctx, assigneesTable, map[string]any{
		"task_id":           a.TaskID,
		"user_id":           a.UserID,
		"external_assignee": a.ExternalAssignee,
	})
}

func (s *Store) GetAssignee(ctx context.Context, id int64) (*Assignee, error) {
	return getOne[Assignee](ctx, s, assigneesTable, id)
}

func (s *Store) ListAssignees(ctx context.Context) ([]Assignee, error) {
	return listWhere[Assignee](ctx, s, assigneesTable, nil)
}

func (s *Store) UpdateAssignee(ctx context.Context, id int64, p AssigneePatch) error {
	return s.update(ctx, assigneesTable, id, p.fields())
}

func (s *Store) DeleteAssignee(ctx context.Context, id int64) error {
	return s.delete(ctx, assigneesTable, id)
}
