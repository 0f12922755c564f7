package database

import "context"

// CreateUser inserts u and returns its user_id. A duplicate email fails with
// ErrDuplicateKey.
func (s *Store) CreateUser(ctx context.Context, u NewUser) (int64, error) {
	values := map[string]any{
		"email":           u.Email,
		"hashed_password": u.HashedPassword,
		"salt":            u.Salt,
	}
	if u.Status != "" {
		values["status"] = u.Status
	}
	return s.insert(ctx, usersTable, values)
}

func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	return getOne[User](ctx, s, usersTable, id)
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	return listWhere[User](ctx, s, usersTable, nil)
}

func (s *Store) UpdateUser(ctx context.Context, id int64, p UserPatch) error {
	return s.update(ctx, usersTable, id, p.fields())
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.delete(ctx, usersTable, id)
}

// UserBoards lists the boards owned by user id.
func (s *Store) UserBoards(ctx context.Context, id int64) ([]Board, error) {
	return children[Board](ctx, s, usersTable, id, boardsTable, "user_id")
}
