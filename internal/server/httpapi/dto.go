package httpapi

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
