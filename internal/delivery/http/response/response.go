// Package response renders the wire shapes the existing frontend consumes.
// Success payloads are returned raw (an object or an array, no envelope) and
// every failure is a {"message": "..."} object.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageBody is the body of every non-2xx response and of the few success
// responses that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message"`
}

// OK writes data with a 200.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes data with a 201.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// Message writes a bare acknowledgement body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Error writes a failure body.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
