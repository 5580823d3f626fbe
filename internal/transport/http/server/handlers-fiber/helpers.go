package handlers_fiber

import (
	"errors"
	"net/http"

	"pr-cycle-metrics/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := "INTERNAL"
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidWeek):
		status = http.StatusBadRequest
		code = "INVALID_WEEK"
		msg = "week must be a valid ISO identifier like 2025-W02"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = "INVALID_ARGUMENT"
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse{Error: errorBody{Code: code, Message: msg}})
}
