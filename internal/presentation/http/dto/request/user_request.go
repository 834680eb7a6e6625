package request

// UserRoleRequest grants or revokes a role by name
type UserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
