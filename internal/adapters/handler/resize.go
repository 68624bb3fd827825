package handler

import (
	"errors"

	"imgsizer/internal/core/domain"
	"imgsizer/internal/core/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// successResponse keeps the historical wire format: code is the string "200"
// on success, a JSON number on errors.
type successResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	OutputJPEG string `json:"output_jpeg"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Resize struct {
	resizer *service.Resizer
}

// NewResize registers the resize and health routes on the app.
func NewResize(app *fiber.App, resizer *service.Resizer) *Resize {
	h := &Resize{resizer: resizer}

	app.Post("/resize_image", h.Handle)
	app.Get("/health", h.Health)

	return h
}

func (h *Resize) Handle(c *fiber.Ctx) error {
	requestID, _ := c.Locals("requestid").(string)
	l := log.With().Str("requestId", requestID).Logger()

	req := &domain.ResizeRequest{}
	if err := c.BodyParser(req); err != nil {
		// Also hit by fractional JSON numbers in the dimension fields, which
		// must not be silently truncated to integers.
		l.Debug().Err(err).Msg("malformed request envelope")
		return invalidInput(c, "malformed request body")
	}

	l.Info().
		Int("width", req.DesiredWidth).
		Int("height", req.DesiredHeight).
		Int("inputLen", len(req.InputJPEG)).
		Msg("handling resize request")

	out, err := h.resizer.Resize(req)
	if err != nil {
		var invalid *domain.InvalidInputError
		if errors.As(err, &invalid) {
			return invalidInput(c, invalid.Reason)
		}

		l.Error().Err(err).Msg("transform failed")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Code:    fiber.StatusInternalServerError,
			Message: "Internal server error: " + err.Error(),
		})
	}

	return c.JSON(successResponse{Code: "200", Message: "success", OutputJPEG: out})
}

func (h *Resize) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func invalidInput(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Code:    fiber.StatusBadRequest,
		Message: "Invalid input: " + reason,
	})
}

// ErrorHandler keeps transport-level failures (including recovered panics)
// on the JSON wire format instead of fiber's plain-text default, so the
// listener always answers with a complete envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	log.Error().Err(err).Int("status", code).Msg("unhandled transport error")

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		message = "Internal server error: " + message
	}

	return c.Status(code).JSON(errorResponse{Code: code, Message: message})
}
