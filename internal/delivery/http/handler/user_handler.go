package handler

import (
	"errors"

	"finquest/internal/delivery/http/dto"
	"finquest/internal/delivery/http/middleware"
	"finquest/internal/domain/user"
	"finquest/internal/pkg/response"
	gameuc "finquest/internal/usecase/game"
	useruc "finquest/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc   useruc.UserUsecase
	game gameuc.GameUsecase
}

type updateProfileRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Password      *string `json:"password"`
	QuizCompleted *bool   `json:"quizCompleted"`
}

type quizStatusRequest struct {
	Completed *bool `json:"completed"`
}

func NewUserHandler(uc useruc.UserUsecase, game gameuc.GameUsecase) *UserHandler {
	return &UserHandler{uc: uc, game: game}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Post("/quiz-status", h.SetQuizStatus)
	r.Get("/progress", h.GetProgress)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	prof, err := h.uc.GetProfile(c.Context(), actor.ID)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewProfileResponse(prof))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, token, err := h.uc.UpdateProfile(c.Context(), actor.ID, useruc.UpdateProfileInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Password:      req.Password,
		QuizCompleted: req.QuizCompleted,
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewAuthResponse(updated, token))
}

func (h *UserHandler) SetQuizStatus(c fiber.Ctx) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req quizStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Completed == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Field completed is required", nil, nil)
	}

	completed, err := h.uc.SetQuizCompleted(c.Context(), actor.ID, *req.Completed)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.QuizStatusResponse{
		Success:       true,
		QuizCompleted: completed,
	})
}

func (h *UserHandler) GetProgress(c fiber.Ctx) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	progress, err := h.game.ProgressFor(c.Context(), actor)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewProgressResponse(progress))
}

func mapUserUsecaseError(err error) error {
	switch {
	case errors.Is(err, useruc.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, user.ErrDuplicatePhone):
		return middleware.NewAppError(fiber.StatusBadRequest, "Phone already registered", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
