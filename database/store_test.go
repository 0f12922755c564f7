package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, foreignKeys bool) *Store {
	t.Helper()
	db, err := InitDB(":memory:", foreignKeys)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func strPtr(s string) *string { return &s }

// seedColumn creates a board and one column on it and returns the column id.
func seedColumn(t *testing.T, s *Store) int64 {
	t.Helper()
	ctx := context.Background()
	boardID, err := s.CreateBoard(ctx, NewBoard{BoardName: "Sprint"})
	require.NoError(t, err)
	colID, err := s.CreateColumn(ctx, NewColumn{ColumnName: "To Do", Position: 0, BoardID: boardID})
	require.NoError(t, err)
	return colID
}

func TestTaskLifecycle(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	colID := seedColumn(t, s)

	id, err := s.CreateTask(ctx, NewTask{
		TaskName:    "Write docs",
		Description: strPtr("README and API notes"),
		ColumnID:    colID,
		DueDate:     "2024-05-01",
		CreatedDate: "2024-04-20",
		Assignee:    "alice",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	t.Run("get returns every stored field", func(t *testing.T) {
		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, Task{
			ID:          id,
			TaskName:    "Write docs",
			Description: strPtr("README and API notes"),
			ColumnID:    colID,
			DueDate:     "2024-05-01",
			CreatedDate: "2024-04-20",
			Assignee:    "alice",
		}, *task)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		name := "Renamed"
		require.NoError(t, s.UpdateTask(ctx, id, TaskPatch{TaskName: &name}))

		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", task.TaskName)
		assert.Equal(t, "README and API notes", *task.Description)
		assert.Equal(t, "2024-05-01", task.DueDate)
		assert.Equal(t, "alice", task.Assignee)
	})

	t.Run("description can be cleared", func(t *testing.T) {
		require.NoError(t, s.UpdateTask(ctx, id, TaskPatch{Description: &sql.NullString{}}))

		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, task.Description)
	})

	t.Run("empty patch only checks existence", func(t *testing.T) {
		assert.NoError(t, s.UpdateTask(ctx, id, TaskPatch{}))
		assert.True(t, IsNotFound(s.UpdateTask(ctx, 99999, TaskPatch{})))
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		require.NoError(t, s.DeleteTask(ctx, id))

		_, err := s.GetTask(ctx, id)
		assert.True(t, IsNotFound(err))
		assert.True(t, IsNotFound(s.DeleteTask(ctx, id)))
	})
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()

	_, err := s.GetTask(ctx, 99999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var dbErr *Error
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "get", dbErr.Op)
	assert.Equal(t, "tasks", dbErr.Table)

	name := "x"
	assert.True(t, IsNotFound(s.UpdateTask(ctx, 99999, TaskPatch{TaskName: &name})))
	assert.True(t, IsNotFound(s.DeleteUser(ctx, 99999)))
}

func TestListTasks(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	colID := seedColumn(t, s)

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	const n = 5
	for i := 0; i < n; i++ {
		_, err := s.CreateTask(ctx, NewTask{TaskName: "t", ColumnID: colID, DueDate: "d", CreatedDate: "c", Assignee: "a"})
		require.NoError(t, err)
	}

	tasks, err = s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, n)
	for _, task := range tasks {
		assert.Equal(t, colID, task.ColumnID)
		assert.Nil(t, task.Description)
		assert.Equal(t, "a", task.Assignee)
	}
}

func TestUsers(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()

	id, err := s.CreateUser(ctx, NewUser{Email: "a@example.com", HashedPassword: "h", Salt: "s"})
	require.NoError(t, err)

	u, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, DefaultStatus, u.Status)
	assert.Equal(t, "h", u.HashedPassword)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.CreateUser(ctx, NewUser{Email: "a@example.com", HashedPassword: "h2", Salt: "s2"})
		require.Error(t, err)
		assert.True(t, IsConstraint(err))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("update to taken email", func(t *testing.T) {
		other, err := s.CreateUser(ctx, NewUser{Email: "b@example.com", HashedPassword: "h", Salt: "s"})
		require.NoError(t, err)
		email := "a@example.com"
		assert.ErrorIs(t, s.UpdateUser(ctx, other, UserPatch{Email: &email}), ErrDuplicateKey)
	})

	t.Run("status is freely overwritten", func(t *testing.T) {
		status := "X"
		require.NoError(t, s.UpdateUser(ctx, id, UserPatch{Status: &status}))
		u, err := s.GetUser(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "X", u.Status)
	})
}

func TestForeignKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("enforced", func(t *testing.T) {
		s := newTestStore(t, true)

		_, err := s.CreateTask(ctx, NewTask{TaskName: "t", ColumnID: 42, DueDate: "d", CreatedDate: "c", Assignee: "a"})
		assert.ErrorIs(t, err, ErrForeignKey)
		assert.True(t, IsConstraint(err))

		colID := seedColumn(t, s)
		taskID, err := s.CreateTask(ctx, NewTask{TaskName: "t", ColumnID: colID, DueDate: "d", CreatedDate: "c", Assignee: "a"})
		require.NoError(t, err)
		_, err = s.CreateAssignee(ctx, NewAssignee{TaskID: taskID, ExternalAssignee: strPtr("contractor")})
		require.NoError(t, err)

		// no cascade: the referenced task cannot go away
		assert.ErrorIs(t, s.DeleteTask(ctx, taskID), ErrForeignKey)
	})

	t.Run("relaxed", func(t *testing.T) {
		s := newTestStore(t, false)

		taskID, err := s.CreateTask(ctx, NewTask{TaskName: "t", ColumnID: 42, DueDate: "d", CreatedDate: "c", Assignee: "a"})
		require.NoError(t, err)
		aID, err := s.CreateAssignee(ctx, NewAssignee{TaskID: taskID})
		require.NoError(t, err)

		require.NoError(t, s.DeleteTask(ctx, taskID))
		a, err := s.GetAssignee(ctx, aID)
		require.NoError(t, err)
		assert.Equal(t, taskID, a.TaskID)
	})
}

func TestTraversal(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, NewUser{Email: "owner@example.com", HashedPassword: "h", Salt: "s"})
	require.NoError(t, err)
	boardID, err := s.CreateBoard(ctx, NewBoard{BoardName: "Roadmap", UserID: &userID})
	require.NoError(t, err)
	_, err = s.CreateBoard(ctx, NewBoard{BoardName: "Unowned"})
	require.NoError(t, err)

	for _, c := range []NewColumn{
		{ColumnName: "Done", Position: 2, BoardID: boardID},
		{ColumnName: "To Do", Position: 0, BoardID: boardID},
		{ColumnName: "Doing", Position: 1, BoardID: boardID},
	} {
		_, err := s.CreateColumn(ctx, c)
		require.NoError(t, err)
	}

	boards, err := s.UserBoards(ctx, userID)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].BoardName)
	assert.Equal(t, DefaultStatus, boards[0].Status)

	cols, err := s.BoardColumns(ctx, boardID)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, []string{"To Do", "Doing", "Done"}, []string{cols[0].ColumnName, cols[1].ColumnName, cols[2].ColumnName})

	tasks, err := s.ColumnTasks(ctx, cols[0].ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = s.BoardColumns(ctx, 99999)
	assert.True(t, IsNotFound(err))
	_, err = s.TaskAssignees(ctx, 99999)
	assert.True(t, IsNotFound(err))
}
