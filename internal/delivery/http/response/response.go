// Package response holds the canonical JSON bodies returned by the HTTP API.
package response

import (
	"github.com/labstack/echo/v4"
)

// Message is the canonical body for acknowledgments and rejections.
// Every non-login response carries exactly this shape.
type Message struct {
	Message string `json:"message"`
}

// Login is the canonical body for a successful login: the session token plus
// the user's display name, and nothing else.
type Login struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// JSONMessage writes a message body with the given status code.
func JSONMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Message: message})
}
