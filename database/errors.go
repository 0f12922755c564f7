package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is matched by every constraint violation below.
	ErrConstraint = errors.New("constraint violation")

	ErrDuplicateKey = &constraintErr{"duplicate key violation"}
	ErrForeignKey   = &constraintErr{"foreign key violation"}
	ErrNotNull      = &constraintErr{"not null constraint violation"}
)

type constraintErr struct{ msg string }

func (e *constraintErr) Error() string { return e.msg }

func (e *constraintErr) Is(target error) bool { return target == ErrConstraint }

// Error describes a failed store operation.
type Error struct {
	Op    string // insert, get, update, delete, list
	Table string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("database: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// translateError maps driver errors onto the package sentinels and wraps the
// result in an *Error. nil stays nil.
func translateError(err error, op, table string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Op: op, Table: table, Err: ErrNotFound}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		var kind error = ErrConstraint
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			kind = ErrDuplicateKey
		case sqlite3.ErrConstraintForeignKey:
			kind = ErrForeignKey
		case sqlite3.ErrConstraintNotNull:
			kind = ErrNotNull
		}
		return &Error{Op: op, Table: table, Err: fmt.Errorf("%w: %s", kind, sqliteErr.Error())}
	}

	return &Error{Op: op, Table: table, Err: err}
}
