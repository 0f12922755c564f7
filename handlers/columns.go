package handlers

import "github.com/CrowderSoup/taskboard/database"

type columnResource = resource[database.Column, database.NewColumn, database.ColumnPatch]

func newColumnResource(b *base) *columnResource {
	return &columnResource{
		base:   b,
		name:   "column",
		plural: "columns",
		title:  "Column",

		parseNew:   parseNewColumn,
		parsePatch: parseColumnPatch,

		create: b.store.CreateColumn,
		get:    b.store.GetColumn,
		list:   b.store.ListColumns,
		update: b.store.UpdateColumn,
		delete: b.store.DeleteColumn,
	}
}

func parseNewColumn(v *validator) database.NewColumn {
	c := database.NewColumn{
		ColumnName: v.reqString("column_name"),
		Position:   v.reqInt("position"),
		BoardID:    v.reqInt("board_id"),
	}
	if s := v.setString("status"); s != nil {
		c.Status = *s
	}
	return c
}

func parseColumnPatch(v *validator) database.ColumnPatch {
	return database.ColumnPatch{
		ColumnName: v.setString("column_name"),
		Position:   v.setInt("position"),
		BoardID:    v.setInt("board_id"),
		Status:     v.setString("status"),
	}
}
