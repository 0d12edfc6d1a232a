package dto

// Res is the envelope for error responses.
type Res struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
	Data    any  `json:"data"`
}

type ErrorType struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type RootRes struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
