package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// table describes one entity table: its name, identity column and the
// columns selected when reading a record.
type table struct {
	name    string
	idCol   string
	columns []string
}

var (
	usersTable     = table{"users", "user_id", []string{"user_id", "email", "hashed_password", "salt", "status"}}
	boardsTable    = table{"boards", "board_id", []string{"board_id", "board_name", "description", "user_id", "status"}}
	columnsTable   = table{"columns", "column_id", []string{"column_id", "column_name", "position", "board_id", "status"}}
	tasksTable     = table{"tasks", "task_id", []string{"task_id", "task_name", "description", "column_id", "due_date", "created_date", "assignee"}}
	assigneesTable = table{"assignees", "assignee_id", []string{"assignee_id", "task_id", "user_id", "external_assignee"}}
)

// Store performs single-row operations against the entity tables. No
// transaction spans more than one statement, so concurrent updates to the
// same row are last-write-wins.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) insert(ctx context.Context, t table, values map[string]any) (int64, error) {
	query, args, err := sq.Insert(t.name).SetMap(values).ToSql()
	if err != nil {
		return 0, &Error{Op: "insert", Table: t.name, Err: err}
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(err, "insert", t.name)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, translateError(err, "insert", t.name)
	}
	return id, nil
}

func (s *Store) update(ctx context.Context, t table, id int64, values map[string]any) error {
	if len(values) == 0 {
		return s.exists(ctx, t, id, "update")
	}

	query, args, err := sq.Update(t.name).SetMap(values).Where(sq.Eq{t.idCol: id}).ToSql()
	if err != nil {
		return &Error{Op: "update", Table: t.name, Err: err}
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "update", t.name)
	}
	return checkAffected(res, "update", t.name)
}

func (s *Store) delete(ctx context.Context, t table, id int64) error {
	query, args, err := sq.Delete(t.name).Where(sq.Eq{t.idCol: id}).ToSql()
	if err != nil {
		return &Error{Op: "delete", Table: t.name, Err: err}
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "delete", t.name)
	}
	return checkAffected(res, "delete", t.name)
}

func (s *Store) exists(ctx context.Context, t table, id int64, op string) error {
	query, args, err := sq.Select("1").From(t.name).Where(sq.Eq{t.idCol: id}).ToSql()
	if err != nil {
		return &Error{Op: op, Table: t.name, Err: err}
	}

	var one int
	if err := s.db.GetContext(ctx, &one, query, args...); err != nil {
		return translateError(err, op, t.name)
	}
	return nil
}

func checkAffected(res sql.Result, op, table string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return translateError(err, op, table)
	}
	if n == 0 {
		return &Error{Op: op, Table: table, Err: ErrNotFound}
	}
	return nil
}

func getOne[T any](ctx context.Context, s *Store, t table, id int64) (*T, error) {
	query, args, err := sq.Select(t.columns...).From(t.name).Where(sq.Eq{t.idCol: id}).ToSql()
	if err != nil {
		return nil, &Error{Op: "get", Table: t.name, Err: err}
	}

	var rec T
	if err := s.db.GetContext(ctx, &rec, query, args...); err != nil {
		return nil, translateError(err, "get", t.name)
	}
	return &rec, nil
}

// listWhere returns every row of t matching where (all rows when where is
// nil), ordered by orderBy.
func listWhere[T any](ctx context.Context, s *Store, t table, where sq.Sqlizer, orderBy ...string) ([]T, error) {
	b := sq.Select(t.columns...).From(t.name)
	if where != nil {
		b = b.Where(where)
	}
	if len(orderBy) == 0 {
		orderBy = []string{t.idCol}
	}
	query, args, err := b.OrderBy(orderBy...).ToSql()
	if err != nil {
		return nil, &Error{Op: "list", Table: t.name, Err: err}
	}

	recs := []T{}
	if err := s.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, translateError(err, "list", t.name)
	}
	return recs, nil
}

// children lists rows of child whose fk column equals parentID, failing with
// ErrNotFound when the parent row itself is absent.
func children[T any](ctx context.Context, s *Store, parent table, parentID int64, child table, fk string, orderBy ...string) ([]T, error) {
	if err := s.exists(ctx, parent, parentID, "list"); err != nil {
		return nil, err
	}
	recs, err := listWhere[T](ctx, s, child, sq.Eq{fk: parentID}, orderBy...)
	if err != nil {
		return nil, fmt.Errorf("list %s of %s %d: %w", child.name, parent.name, parentID, err)
	}
	return recs, nil
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraint reports whether err is a unique, not-null or foreign-key
// violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}
