package database

import "context"

func (s *Store) CreateColumn(ctx context.Context, c NewColumn) (int64, error) {
	values := map[string]any{
		"column_name": c.ColumnName,
		"position":    c.Position,
		"board_id":    c.BoardID,
	}
	if c.Status != "" {
		values["status"] = c.Status
	}
	return s.insert(ctx, columnsTable, values)
}

func (s *Store) GetColumn(ctx context.Context, id int64) (*Column, error) {
	return getOne[Column](ctx, s, columnsTable, id)
}

func (s *Store) ListColumns(ctx context.Context) ([]Column, error) {
	return listWhere[Column](ctx, s, columnsTable, nil)
}

func (s *Store) UpdateColumn(ctx context.Context, id int64, p ColumnPatch) error {
	return s.update(ctx, columnsTable, id, p.fields())
}

func (s *Store) DeleteColumn(ctx context.Context, id int64) error {
	return s.delete(ctx, columnsTable, id)
}

// ColumnTasks lists the tasks currently in column id.
func (s *Store) ColumnTasks(ctx context.Context, id int64) ([]Task, error) {
	return children[Task](ctx, s, columnsTable, id, tasksTable, "column_id")
}
