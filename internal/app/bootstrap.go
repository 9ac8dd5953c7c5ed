package app

import (
	"fmt"
	"strings"

	"finquest/internal/delivery/http/middleware"
	"finquest/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the fiber app and starts the realtime
// hub. The returned cleanup closes the database pool.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	app := New(c)
	go c.Hub.Run()

	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	routes.Register(f, routes.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Hub:    c.Hub,
		Logger: c.Logger,
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
