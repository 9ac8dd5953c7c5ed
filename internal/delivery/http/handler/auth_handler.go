package handler

import (
	"errors"

	"finquest/internal/delivery/http/dto"
	"finquest/internal/delivery/http/middleware"
	"finquest/internal/pkg/response"
	ucauth "finquest/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc ucauth.AuthUsecase
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func NewAuthHandler(uc ucauth.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAuthResponse(usr, token))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewAuthResponse(usr, token))
}

func mapAuthUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Name, phone and password are required", nil, err)
	case errors.Is(err, ucauth.ErrPhoneAlreadyRegistered):
		// duplicate phone is a 409-class condition surfaced as 400 for
		// client compatibility
		return middleware.NewAppError(fiber.StatusBadRequest, "Phone already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid phone or password", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
