package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workholic/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaderboardHandler LeaderboardHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workholic-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", authHandler.Me)
			r.Get("/leaderboard", leaderboardHandler.Get)
			r.Get("/schedule/today", attendanceHandler.TodaySchedule)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", attendanceHandler.Today)
				r.Get("/history", attendanceHandler.History)

				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/actions", attendanceHandler.ClockAction)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", employeeHandler.ListUsers)
					r.Post("/", employeeHandler.CreateUser)
					r.Get("/{email}", employeeHandler.GetUser)
					r.Put("/{email}", employeeHandler.UpdateUser)
					r.Delete("/{email}", employeeHandler.DeleteUser)
				})

				r.Get("/employees", employeeHandler.ListEmployees)
				r.Get("/attendance", attendanceHandler.ListAll)
				r.Post("/tasks", leaderboardHandler.UpdateTasks)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/attendance.xlsx", reportHandler.ExportXLSX)
					r.Get("/attendance.pdf", reportHandler.ExportPDF)
				})
			})
		})
	})
	return r
}
