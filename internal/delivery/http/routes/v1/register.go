package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed handlers. Everything except auth and health
// sits behind the bearer-token middleware.
type Deps struct {
	AuthMw *middleware.AuthMiddleware

	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Resume    *handler.ResumeHandler
	Interview *handler.InterviewHandler
	Courses   *handler.CoursesHandler
	Jobs      *handler.JobsHandler
	Reports   *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Admin     *handler.AdminHandler
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	if d.Auth != nil {
		d.Auth.RegisterRoutes(r.Group("/auth"))
	}

	if d.AuthMw == nil {
		return
	}
	protected := r.Group("", d.AuthMw.Middleware())

	if d.Resume != nil {
		d.Resume.RegisterRoutes(protected.Group("/resume"))
	}
	if d.Interview != nil {
		d.Interview.RegisterRoutes(protected.Group("/interview"))
	}
	if d.Courses != nil {
		d.Courses.RegisterRoutes(protected.Group("/courses"))
	}
	if d.Jobs != nil {
		d.Jobs.RegisterRoutes(protected.Group("/jobs"))
	}
	if d.Reports != nil {
		d.Reports.RegisterRoutes(protected.Group("/reports"))
	}
	if d.Dashboard != nil {
		d.Dashboard.RegisterRoutes(protected.Group("/dashboard"))
	}
	if d.Admin != nil {
		d.Admin.RegisterRoutes(protected.Group("/admin"))
	}
}
