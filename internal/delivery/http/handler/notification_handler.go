package handler

import (
	"errors"

	"finquest/internal/delivery/http/dto"
	"finquest/internal/delivery/http/middleware"
	"finquest/internal/domain/notification"
	"finquest/internal/pkg/response"
	notifuc "finquest/internal/usecase/notification"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	uc notifuc.NotificationUsecase
}

func NewNotificationHandler(uc notifuc.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	items, err := h.uc.List(c.Context(), actor.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewNotificationResponses(items))
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid notification id", nil, err)
	}

	if err := h.uc.MarkRead(c.Context(), actor.ID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
