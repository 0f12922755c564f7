package handlers

import "github.com/CrowderSoup/taskboard/database"

type assigneeResource = resource[database.Assignee, database.NewAssignee, database.AssigneePatch]

// An assignee may name a user, an external party, both or neither.
func newAssigneeResource(b *base) *assigneeResource {
	return &assigneeResource{
		base:   b,
		name:   "assignee",
		plural: "assignees",
		title:  "Assignee",

		parseNew:   parseNewAssignee,
		parsePatch: parseAssigneePatch,

		create: b.store.CreateAssignee,
		get:    b.store.GetAssignee,
		list:   b.store.ListAssignees,
		update: b.store.UpdateAssignee,
		delete: b.store.DeleteAssignee,
	}
}

func parseNewAssignee(v *validator) database.NewAssignee {
	return database.NewAssignee{
		TaskID:           v.reqInt("task_id"),
		UserID:           v.optInt("user_id"),
		ExternalAssignee: v.optString("external_assignee"),
	}
}

func parseAssigneePatch(v *validator) database.AssigneePatch {
	return database.AssigneePatch{
		TaskID:           v.setInt("task_id"),
		UserID:           v.setNullInt("user_id"),
		ExternalAssignee: v.setNullString("external_assignee"),
	}
}
