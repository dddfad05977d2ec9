package config

// Rights a role grants. Handlers check these via the auth middleware.
const (
	RightGetUsers    = "getUsers"
	RightManageUsers = "manageUsers"
)

// RoleRights maps a role to the rights it grants.
var RoleRights = map[string][]string{
	"user":  {},
	"admin": {RightGetUsers, RightManageUsers},
}

const DefaultRole = "user"
