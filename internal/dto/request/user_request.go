package request

// CreateUserRequest 创建名片拥有者
type CreateUserRequest struct {
	Nickname string `json:"nickname" binding:"required,max=50"`
	Email    string `json:"email" binding:"omitempty,email,max=100"`
}
