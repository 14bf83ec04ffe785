package dto

type ErrorResponse struct {
	Message string `json:"error"`
}
