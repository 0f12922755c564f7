package database

import "database/sql"

// DefaultStatus is the conventional "active" status code.
const DefaultStatus = "A"

type User struct {
	ID             int64  `db:"user_id" json:"user_id"`
	Email          string `db:"email" json:"email"`
	HashedPassword string `db:"hashed_password" json:"-"`
	Salt           string `db:"salt" json:"-"`
	Status         string `db:"status" json:"status"`
}

type Board struct {
	ID          int64   `db:"board_id" json:"board_id"`
	BoardName   string  `db:"board_name" json:"board_name"`
	Description *string `db:"description" json:"description"`
	UserID      *int64  `db:"user_id" json:"user_id"`
	Status      string  `db:"status" json:"status"`
}

type Column struct {
	ID         int64  `db:"column_id" json:"column_id"`
	ColumnName string `db:"column_name" json:"column_name"`
	Position   int64  `db:"position" json:"position"`
	BoardID    int64  `db:"board_id" json:"board_id"`
	Status     string `db:"status" json:"status"`
}

// Task is a card on the board. DueDate and CreatedDate are stored verbatim.
type Task struct {
	ID          int64   `db:"task_id" json:"task_id"`
	TaskName    string  `db:"task_name" json:"task_name"`
	Description *string `db:"description" json:"description"`
	ColumnID    int64   `db:"column_id" json:"column_id"`
	DueDate     string  `db:"due_date" json:"due_date"`
	CreatedDate string  `db:"created_date" json:"created_date"`
	Assignee    string  `db:"assignee" json:"assignee"`
}

// Assignee links a task to a registered user, an external party, or both.
type Assignee struct {
	ID               int64   `db:"assignee_id" json:"assignee_id"`
	TaskID           int64   `db:"task_id" json:"task_id"`
	UserID           *int64  `db:"user_id" json:"user_id"`
	ExternalAssignee *string `db:"external_assignee" json:"external_assignee"`
}

// NewUser holds the fields accepted on user creation. An empty Status lets
// the table default apply.
type NewUser struct {
	Email          string
	HashedPassword string
	Salt           string
	Status         string
}

type NewBoard struct {
	BoardName   string
	Description *string
	UserID      *int64
	Status      string
}

type NewColumn struct {
	ColumnName string
	Position   int64
	BoardID    int64
	Status     string
}

type NewTask struct {
	TaskName    string
	Description *string
	ColumnID    int64
	DueDate     string
	CreatedDate string
	Assignee    string
}

type NewAssignee struct {
	TaskID           int64
	UserID           *int64
	ExternalAssignee *string
}

// Patch types carry only the fields a partial update supplies. A nil pointer
// means "leave unchanged". For nullable columns a non-nil value with
// Valid=false clears the column.

type UserPatch struct {
	Email          *string
	HashedPassword *string
	Salt           *string
	Status         *string
}

type BoardPatch struct {
	BoardName   *string
	Description *sql.NullString
	UserID      *sql.NullInt64
	Status      *string
}

type ColumnPatch struct {
	ColumnName *string
	Position   *int64
	BoardID    *int64
	Status     *string
}

type TaskPatch struct {
	TaskName    *string
	Description *sql.NullString
	ColumnID    *int64
	DueDate     *string
	CreatedDate *string
	Assignee    *string
}

type AssigneePatch struct {
	TaskID           *int64
	UserID           *sql.NullInt64
	ExternalAssignee *sql.NullString
}

func (p UserPatch) fields() map[string]any {
	f := fieldSet{}
	f.str("email", p.Email)
	f.str("hashed_password", p.HashedPassword)
	f.str("salt", p.Salt)
	f.str("status", p.Status)
	return f
}

func (p BoardPatch) fields() map[string]any {
	f := fieldSet{}
	f.str("board_name", p.BoardName)
	f.nullStr("description", p.Description)
	f.nullInt("user_id", p.UserID)
	f.str("status", p.Status)
	return f
}

func (p ColumnPatch) fields() map[string]any {
	f := fieldSet{}
	f.str("column_name", p.ColumnName)
	f.int("position", p.Position)
	f.int("board_id", p.BoardID)
	f.str("status", p.Status)
	return f
}

func (p TaskPatch) fields() map[string]any {
	f := fieldSet{}
	f.str("task_name", p.TaskName)
	f.nullStr("description", p.Description)
	f.int("column_id", p.ColumnID)
	f.str("due_date", p.DueDate)
	f.str("created_date", p.CreatedDate)
	f.str("assignee", p.Assignee)
	return f
}

func (p AssigneePatch) fields() map[string]any {
	f := fieldSet{}
	f.int("task_id", p.TaskID)
	f.nullInt("user_id", p.UserID)
	f.nullStr("external_assignee", p.ExternalAssignee)
	return f
}

type fieldSet map[string]any

func (f fieldSet) str(col string, v *string) {
	if v != nil {
		f[col] = *v
	}
}

func (f fieldSet) int(col string, v *int64) {
	if v != nil {
		f[col] = *v
	}
}

func (f fieldSet) nullStr(col string, v *sql.NullString) {
	if v != nil {
		f[col] = *v
	}
}

func (f fieldSet) nullInt(col string, v *sql.NullInt64) {
	if v != nil {
		f[col] = *v
	}
}
