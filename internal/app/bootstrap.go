package app

import (
	"fmt"
	"log"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 12 << 20,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// closes the database and cache connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	routes.Register(app, v1.Deps{
		AuthMw: middleware.NewAuthMiddleware(c.JWT),

		Health:    handler.NewHealthHandler(c.DB, c.Cache),
		Auth:      handler.NewAuthHandler(c.Auth, c.OAuth, c.States),
		Resume:    handler.NewResumeHandler(c.Resume),
		Interview: handler.NewInterviewHandler(c.Interview),
		Courses:   handler.NewCoursesHandler(c.Courses),
		Jobs:      handler.NewJobsHandler(c.JobSearch, c.SavedJobs),
		Reports:   handler.NewReportHandler(c.Reports),
		Dashboard: handler.NewDashboardHandler(c.Reports, c.SavedJobs),
		Admin:     handler.NewAdminHandler(c.Admin),
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
