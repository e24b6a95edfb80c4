package model

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type Message struct {
	Message string `json:"message"`
}

type Detail struct {
	Detail string `json:"detail"`
}
