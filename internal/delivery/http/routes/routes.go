package routes

import (
	"finquest/internal/config"
	"finquest/internal/database"
	"finquest/internal/delivery/http/handler"
	"finquest/internal/delivery/http/middleware"
	"finquest/internal/infrastructure/cache"
	pgrepo "finquest/internal/infrastructure/persistence/postgres"
	"finquest/internal/pkg/jwt"
	ucauth "finquest/internal/usecase/auth"
	ucgame "finquest/internal/usecase/game"
	ucnotif "finquest/internal/usecase/notification"
	ucquiz "finquest/internal/usecase/quiz"
	ucuser "finquest/internal/usecase/user"
	"finquest/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// Deps carries everything the route tree needs. Paths mount at the root
// because they are the client compatibility contract.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *logrus.Logger
}

func Register(app *fiber.App, d Deps) {
	if app == nil || d.DB == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(d.Config.Auth.JWTSecret, d.Config.Auth.TokenTTL)

	userRepo := pgrepo.NewUserRepository(d.DB)
	quizRepo := pgrepo.NewQuizRepository(d.DB)
	levelRepo := pgrepo.NewLevelRepository(d.DB)
	notifRepo := pgrepo.NewNotificationRepository(d.DB)

	notifUC := ucnotif.NewService(notifRepo, ws.NewNotifier(d.Hub), d.Logger)
	authUC := ucauth.NewService(userRepo, jwtSvc, notifUC)
	userUC := ucuser.NewService(userRepo, jwtSvc, notifUC)
	quizUC := ucquiz.NewService(quizRepo, d.Cache)
	gameUC := ucgame.NewService(levelRepo, d.Cache)

	authMw := middleware.NewAuthMiddleware(jwtSvc, userRepo)

	handler.NewHealthHandler(d.DB, d.Cache).RegisterRoutes(app)
	handler.NewAuthHandler(authUC).RegisterRoutes(app.Group("/auth"))
	handler.NewQuizHandler(quizUC).RegisterRoutes(app.Group("/quiz"))
	handler.NewGameHandler(gameUC).RegisterRoutes(app.Group("/game"))

	handler.NewUserHandler(userUC, gameUC).
		RegisterRoutes(app.Group("/users", authMw.Middleware()))
	handler.NewNotificationHandler(notifUC).
		RegisterRoutes(app.Group("/notifications", authMw.Middleware()))

	if d.Hub != nil {
		wsHandler := ws.NewHandler(d.Hub, d.Logger)
		app.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
	}
}
