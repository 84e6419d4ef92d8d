package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/maverick1978/3dlabmod1/internal/application/auth"
	"github.com/maverick1978/3dlabmod1/internal/application/class"
	"github.com/maverick1978/3dlabmod1/internal/application/grado"
	"github.com/maverick1978/3dlabmod1/internal/application/notification"
	"github.com/maverick1978/3dlabmod1/internal/application/profile"
	"github.com/maverick1978/3dlabmod1/internal/application/report"
	"github.com/maverick1978/3dlabmod1/internal/application/student"
	"github.com/maverick1978/3dlabmod1/internal/application/task"
	"github.com/maverick1978/3dlabmod1/internal/application/user"
	"github.com/maverick1978/3dlabmod1/internal/config"
	"github.com/maverick1978/3dlabmod1/internal/domain"
	jwtinfra "github.com/maverick1978/3dlabmod1/internal/infrastructure/jwt"
	s3infra "github.com/maverick1978/3dlabmod1/internal/infrastructure/s3"
	"github.com/maverick1978/3dlabmod1/internal/infrastructure/sqlite"
	"github.com/maverick1978/3dlabmod1/internal/transport/http/handler"
	appmiddleware "github.com/maverick1978/3dlabmod1/internal/transport/http/middleware"
	"github.com/maverick1978/3dlabmod1/internal/transport/ws"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	NotificationRepo *sqlite.NotificationRepo
	UserRepo         *sqlite.UserRepo
	TaskRepo         *sqlite.TaskRepo
	ClassRepo        *sqlite.ClassRepo
	StudentRepo      *sqlite.StudentRepo
	GradoRepo        *sqlite.GradoRepo
	ProfileRepo      *sqlite.ProfileRepo
	S3Store          *s3infra.Store
	JWTProvider      *jwtinfra.Provider
	Hub              *ws.Hub
	Log              zerolog.Logger
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10, on the credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	notifSvc := notification.NewService(deps.NotificationRepo, deps.Hub, domain.DefaultNotificationDefaults())
	authSvc := auth.NewService(deps.UserRepo, deps.JWTProvider)
	userSvc := user.NewService(deps.UserRepo)
	taskSvc := task.NewService(deps.TaskRepo)
	classSvc := class.NewService(deps.ClassRepo)
	studentSvc := student.NewService(deps.StudentRepo, deps.S3Store)
	gradoSvc := grado.NewService(deps.GradoRepo)
	profileSvc := profile.NewService(deps.ProfileRepo)
	reportSvc := report.NewService(&sqlite.Counters{
		Users:         deps.UserRepo,
		Notifications: deps.NotificationRepo,
		Tasks:         deps.TaskRepo,
		Classes:       deps.ClassRepo,
		Students:      deps.StudentRepo,
	})

	healthH := handler.NewHealthHandler()
	notifH := handler.NewNotificationHandler(notifSvc)
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	taskH := handler.NewTaskHandler(taskSvc)
	classH := handler.NewClassHandler(classSvc)
	studentH := handler.NewStudentHandler(studentSvc)
	gradoH := handler.NewGradoHandler(gradoSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	reportH := handler.NewReportHandler(reportSvc)
	wsH := ws.NewHandler(deps.Hub, notifSvc)

	// The notification surface and the channel ship without authentication
	// so the kiosk displays in the hallways can read them. Known exposure.
	deps.Log.Warn().Msg("notification endpoints and /ws are unauthenticated")

	r.Get("/health", healthH.Ping)
	r.Handle("/ws", wsH)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.With(sensitiveRL.Limit).Post("/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/login", authH.Login)

		r.Get("/notifications", notifH.List)
		r.Post("/notifications", notifH.Create)
		r.Post("/notifications/{id}/read", notifH.MarkRead)
		r.Delete("/notifications/{id}", notifH.Delete)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/tasks", taskH.List)
			r.Post("/tasks", taskH.Create)
			r.Put("/tasks/{id}", taskH.Update)
			r.Delete("/tasks/{id}", taskH.Delete)

			r.Get("/classes", classH.List)
			r.Get("/classes/roster", classH.ListRoster)
			r.Get("/classes/{id}/students", classH.Students)
			r.Post("/classes/assign", classH.AssignStudent)
			r.Put("/classes/reassign", classH.ReassignStudent)
			r.Delete("/classes/assignments/{assignmentID}", classH.RemoveStudent)

			r.Get("/students", studentH.List)
			r.Get("/students/unassigned", studentH.Unassigned)
			r.Get("/students/{id}", studentH.Get)
			r.Get("/students/{id}/history", studentH.History)
			r.Post("/students/{id}/recommendation", studentH.Recommend)
			r.Get("/students/{id}/photo", studentH.Photo)
			r.Post("/students/{id}/photo", studentH.UploadPhoto)

			r.Get("/grados", gradoH.List)
			r.Get("/profiles", profileH.List)
			r.Get("/reports", reportH.Summary)

			// Admin and educator management
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleEducator))

				r.Post("/classes", classH.Create)
				r.Put("/classes/{id}", classH.Update)
				r.Delete("/classes/{id}", classH.Delete)
			})

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/users", userH.List)
				r.Post("/users", userH.Create)
				r.Get("/users/{id}", userH.Get)
				r.Put("/users/{id}", userH.Update)
				r.Delete("/users/{id}", userH.Delete)
				r.Put("/users/{id}/approve", userH.Approve)

				r.Post("/grados", gradoH.Create)
				r.Delete("/grados/{id}", gradoH.Delete)

				r.Post("/profiles", profileH.Create)
				r.Get("/profiles/{role}/users", userH.ListByRole)
				r.Get("/profiles/{id}/check-users", profileH.CheckUsers)
				r.Delete("/profiles/{id}", profileH.Delete)

				r.Get("/admin/stats", reportH.AdminStats)
				r.Get("/admin/dashboard", reportH.Dashboard)
			})
		})
	})

	return r
}
