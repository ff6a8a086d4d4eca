package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Fixed plain-text bodies for error statuses.
const (
	NotFoundText         = "404 Page Not Found"
	MethodNotAllowedText = "405 Method Not Allowed"
	InternalErrorText    = "500 Internal Server Error"
)

// sendText writes a plain-text response with the given status.
func sendText(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}

// sendHTML writes an HTML response with the given status.
func sendHTML(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(body)
}

// ErrorHandler returns a Fiber global error handler that answers with fixed
// plain-text bodies and never exposes the underlying error.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return sendText(c, status, NotFoundText)
		case fiber.StatusMethodNotAllowed:
			return sendText(c, status, MethodNotAllowedText)
		default:
			return sendText(c, fiber.StatusInternalServerError, InternalErrorText)
		}
	}
}
