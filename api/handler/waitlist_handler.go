package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vaultlist/internal/dto"
	"vaultlist/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type WaitlistHandler struct {
	Service  *service.WaitlistService
	Validate *validator.Validate
}

func NewWaitlistHandler(svc *service.WaitlistService, validate *validator.Validate) *WaitlistHandler {
	return &WaitlistHandler{
		Service:  svc,
		Validate: validate,
	}
}

func (h *WaitlistHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, service.ErrInvalidEmail)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, service.ErrInvalidEmail)
	}

	input := service.JoinInput{
		Email:     req.Email,
		UserAgent: stringPtr(c.Request().UserAgent()),
	}
	if _, err := h.Service.Join(c.Request().Context(), input); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SignupResponse{
		Success: true,
		Message: "Verification email sent! Please check your inbox.",
	})
}

func (h *WaitlistHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")

	result, err := h.Service.Verify(c.Request().Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingToken):
			return c.HTML(http.StatusBadRequest, renderPage(invalidLinkPage, nil))
		case errors.Is(err, service.ErrTokenInvalid):
			return c.HTML(http.StatusBadRequest, renderPage(invalidTokenPage, nil))
		case errors.Is(err, service.ErrTokenExpired):
			return c.HTML(http.StatusBadRequest, renderPage(expiredPage, nil))
		default:
			c.Logger().Error(err)
			return c.HTML(http.StatusInternalServerError, renderPage(failurePage, nil))
		}
	}

	if result.AlreadyVerified {
		return c.HTML(http.StatusOK, renderPage(alreadyVerifiedPage, pageData{Email: result.Email}))
	}
	return c.HTML(http.StatusOK, renderPage(verifiedPage, pageData{Email: result.Email}))
}

func (h *WaitlistHandler) Count(c echo.Context) error {
	count, err := h.Service.Count(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *WaitlistHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrAlreadyVerified),
		errors.Is(err, service.ErrVerificationPending):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrEmailDeliveryFailed):
		return writeError(c, http.StatusInternalServerError, err)
	}
	// Collaborator malfunction: no internal detail leaves the handler.
	c.Logger().Error(err)
	return writeError(c, http.StatusInternalServerError, errors.New("something went wrong"))
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
