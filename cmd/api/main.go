package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/workholic/attendance-backend-go/internal/config"
	"github.com/workholic/attendance-backend-go/internal/domain/schedule"
	appHTTP "github.com/workholic/attendance-backend-go/internal/handler/http"
	"github.com/workholic/attendance-backend-go/internal/pkg/database"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
	attendanceService "github.com/workholic/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/workholic/attendance-backend-go/internal/service/auth"
	employeeService "github.com/workholic/attendance-backend-go/internal/service/employee"
	leaderboardService "github.com/workholic/attendance-backend-go/internal/service/leaderboard"
	reportService "github.com/workholic/attendance-backend-go/internal/service/report"
	"github.com/workholic/attendance-backend-go/internal/store"
	excelStore "github.com/workholic/attendance-backend-go/internal/store/excel"
	pgStore "github.com/workholic/attendance-backend-go/internal/store/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var recordStore store.Store
	switch cfg.Store.Type {
	case "excel":
		recordStore = excelStore.NewStore(cfg.Store.WorkbookPath)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		pg := pgStore.NewStore(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatal("Failed to migrate database: ", err)
		}
		recordStore = pg
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	if err := store.EnsureAdmin(ctx, recordStore, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatal("Failed to bootstrap admin account: ", err)
	}

	schedules, err := schedule.NewRegistry(schedule.Defaults())
	if err != nil {
		log.Fatal("Failed to build schedule registry: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(recordStore, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(recordStore, schedules)
	leaderboardSvc := leaderboardService.NewLeaderboardService(recordStore)
	employeeSvc := employeeService.NewEmployeeService(recordStore)
	reportSvc := reportService.NewReportService(recordStore)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaderboardHandler := appHTTP.NewLeaderboardHandler(leaderboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		leaderboardHandler,
		employeeHandler,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
