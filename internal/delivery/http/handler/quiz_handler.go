package handler

import (
	"finquest/internal/delivery/http/dto"
	"finquest/internal/delivery/http/middleware"
	"finquest/internal/pkg/response"
	quizuc "finquest/internal/usecase/quiz"

	"github.com/gofiber/fiber/v3"
)

type QuizHandler struct {
	uc quizuc.QuizUsecase
}

func NewQuizHandler(uc quizuc.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListQuestions)
	r.Get("/categories", h.ListCategories)
}

func (h *QuizHandler) ListQuestions(c fiber.Ctx) error {
	questions, err := h.uc.Questions(c.Context(), c.Query("category"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewQuestionResponses(questions))
}

func (h *QuizHandler) ListCategories(c fiber.Ctx) error {
	categories, err := h.uc.Categories(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}
