package handlers

import "github.com/CrowderSoup/taskboard/database"

type taskResource = resource[database.Task, database.NewTask, database.TaskPatch]

func newTaskResource(b *base) *taskResource {
	return &taskResource{
		base:   b,
		name:   "task",
		plural: "tasks",
		title:  "Task",

		parseNew:   parseNewTask,
		parsePatch: parseTaskPatch,

		create: b.store.CreateTask,
		get:    b.store.GetTask,
		list:   b.store.ListTasks,
		update: b.store.UpdateTask,
		delete: b.store.DeleteTask,
	}
}

// parseNewTask requires task_name, column_id, due_date, created_date and
// assignee; description is optional. Dates are kept as given.
func parseNewTask(v *validator) database.NewTask {
	return database.NewTask{
		TaskName:    v.reqString("task_name"),
		Description: v.optString("description"),
		ColumnID:    v.reqInt("column_id"),
		DueDate:     v.reqString("due_date"),
		CreatedDate: v.reqString("created_date"),
		Assignee:    v.reqString("assignee"),
	}
}

func parseTaskPatch(v *validator) database.TaskPatch {
	return database.TaskPatch{
		TaskName:    v.setString("task_name"),
		Description: v.setNullString("description"),
		ColumnID:    v.setInt("column_id"),
		DueDate:     v.setString("due_date"),
		CreatedDate: v.setString("created_date"),
		Assignee:    v.setString("assignee"),
	}
}
