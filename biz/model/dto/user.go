package dto

type CreateUserReq struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=72"`
}

type UserResp struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ListUsersResp struct {
	Users []*UserResp `json:"users"`
}

type GetUserReq struct {
	UserID string `query:"user_id" validate:"required,max=64"`
}

type GetUserByUsernameReq struct {
	Username string `query:"username" validate:"required,max=64"`
}

type GetUserByEmailReq struct {
	Email string `query:"email" validate:"required,max=128"`
}

type UpdateUserReq struct {
	UserID   string `json:"user_id" validate:"required,max=64"`
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=72"`
}

type DeleteUserReq struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

type DeleteUserResp struct{}
