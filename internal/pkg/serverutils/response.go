package serverutils

type ErrorResponse struct {
	Message string `json:"message"`
}
