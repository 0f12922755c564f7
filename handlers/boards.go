package handlers

import "github.com/CrowderSoup/taskboard/database"

type boardResource = resource[database.Board, database.NewBoard, database.BoardPatch]

func newBoardResource(b *base) *boardResource {
	return &boardResource{
		base:   b,
		name:   "board",
		plural: "boards",
		title:  "Board",

		parseNew:   parseNewBoard,
		parsePatch: parseBoardPatch,

		create: b.store.CreateBoard,
		get:    b.store.GetBoard,
		list:   b.store.ListBoards,
		update: b.store.UpdateBoard,
		delete: b.store.DeleteBoard,
	}
}

func parseNewBoard(v *validator) database.NewBoard {
	nb := database.NewBoard{
		BoardName:   v.reqString("board_name"),
		Description: v.optString("description"),
		UserID:      v.optInt("user_id"),
	}
	if s := v.setString("status"); s != nil {
		nb.Status = *s
	}
	return nb
}

func parseBoardPatch(v *validator) database.BoardPatch {
	return database.BoardPatch{
		BoardName:   v.setString("board_name"),
		Description: v.setNullString("description"),
		UserID:      v.setNullInt("user_id"),
		Status:      v.setString("status"),
	}
}
