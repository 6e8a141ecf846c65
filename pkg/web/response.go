// Package web defines common components for a web application.
package web

// Messages returned to clients.
const (
	MsgInvalidInput   = "Invalid input data."
	MsgNotFound       = "Transaction not found."
	MsgInvalidRequest = "Invalid request"
	MsgInternal       = "Internal Server Error"
)

// Message is the body of every non-success response.
type Message struct {
	Message string `json:"message"`
}

// NewMessage wraps msg into a json friendly struct.
func NewMessage(msg string) Message {
	return Message{Message: msg}
}
