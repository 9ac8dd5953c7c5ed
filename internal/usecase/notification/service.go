package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"finquest/internal/domain/notification"
	"finquest/internal/domain/user"
)

// Broadcaster pushes a freshly recorded notification to connected realtime
// clients. A nil broadcaster is a valid configuration.
type Broadcaster interface {
	NotificationCreated(n notification.Notification)
}

type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo        notification.Repository
	broadcaster Broadcaster
	logger      *logrus.Logger
}

func NewService(repo notification.Repository, broadcaster Broadcaster, logger *logrus.Logger) *Service {
	return &Service{repo: repo, broadcaster: broadcaster, logger: logger}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, id)
}

// Welcome records the greeting shown after registration. Recording is best
// effort; a failed insert never fails the registration that triggered it.
func (s *Service) Welcome(ctx context.Context, u user.User) {
	s.record(ctx, notification.Notification{
		ID:     uuid.New(),
		UserID: u.ID,
		Kind:   notification.KindWelcome,
		Title:  "Welcome to FinQuest",
		Body:   "Take the starting quiz to unlock the map.",
	})
}

// QuizCompleted records the onboarding-quiz completion notification.
func (s *Service) QuizCompleted(ctx context.Context, u user.User) {
	s.record(ctx, notification.Notification{
		ID:     uuid.New(),
		UserID: u.ID,
		Kind:   notification.KindQuizCompleted,
		Title:  "Quiz completed!",
		Body:   "The full game map is now unlocked.",
	})
}

func (s *Service) record(ctx context.Context, n notification.Notification) {
	if err := s.repo.Create(ctx, n); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("kind", n.Kind).Warn("record notification failed")
		}
		return
	}
	if s.broadcaster != nil {
		s.broadcaster.NotificationCreated(n)
	}
}
