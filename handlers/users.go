package handlers

import "github.com/CrowderSoup/taskboard/database"

type userResource = resource[database.User, database.NewUser, database.UserPatch]

// Users are created with an already hashed password and its salt; neither is
// ever written back in a response.
func newUserResource(b *base) *userResource {
	return &userResource{
		base:   b,
		name:   "user",
		plural: "users",
		title:  "User",

		parseNew:   parseNewUser,
		parsePatch: parseUserPatch,

		create: b.store.CreateUser,
		get:    b.store.GetUser,
		list:   b.store.ListUsers,
		update: b.store.UpdateUser,
		delete: b.store.DeleteUser,
	}
}

func parseNewUser(v *validator) database.NewUser {
	u := database.NewUser{
		Email:          v.reqString("email"),
		HashedPassword: v.reqString("hashed_password"),
		Salt:           v.reqString("salt"),
	}
	if s := v.setString("status"); s != nil {
		u.Status = *s
	}
	return u
}

func parseUserPatch(v *validator) database.UserPatch {
	return database.UserPatch{
		Email:          v.setString("email"),
		HashedPassword: v.setString("hashed_password"),
		Salt:           v.setString("salt"),
		Status:         v.setString("status"),
	}
}
