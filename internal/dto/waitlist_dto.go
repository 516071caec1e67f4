package dto

type SignupRequest struct {
	Email string `json:"email" validate:"required,max=255"`
}

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
