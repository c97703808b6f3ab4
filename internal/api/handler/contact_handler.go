package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// ContactHandler accepts messages from the public contact form.
type ContactHandler struct {
	log zerolog.Logger
}

func NewContactHandler(log zerolog.Logger) *ContactHandler {
	return &ContactHandler{log: log}
}

// Submit handles POST /v1/contact. Messages are accepted for asynchronous
// follow-up; there is no outbound mail integration, so they are recorded in
// the log stream.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  contactRequest  true  "Message"
// @Success      202
// @Failure      400  {object}  errorResponse
// @Router       /v1/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	h.log.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", req.Subject).
		Msg("contact message received")

	return c.NoContent(http.StatusAccepted)
}
