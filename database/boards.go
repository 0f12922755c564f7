package database

import "context"

func (s *Store) CreateBoard(ctx context.Context, b NewBoard) (int64, error) {
	values := map[string]any{
		"board_name":  b.BoardName,
		"description": b.Description,
		"user_id":     b.UserID,
	}
	if b.Status != "" {
		values["status"] = b.Status
	}
	return s.insert(ctx, boardsTable, values)
}

func (s *Store) GetBoard(ctx context.Context, id int64) (*Board, error) {
	return getOne[Board](ctx, s, boardsTable, id)
}

func (s *Store) ListBoards(ctx context.Context) ([]Board, error) {
	return listWhere[Board](ctx, s, boardsTable, nil)
}

func (s *Store) UpdateBoard(ctx context.Context, id int64, p BoardPatch) error {
	return s.update(ctx, boardsTable, id, p.fields())
}

func (s *Store) DeleteBoard(ctx context.Context, id int64) error {
	return s.delete(ctx, boardsTable, id)
}

// BoardColumns lists the columns of board id left to right.
func (s *Store) BoardColumns(ctx context.Context, id int64) ([]Column, error) {
	return children[Column](ctx, s, boardsTable, id, columnsTable, "board_id", "position", "column_id")
}
