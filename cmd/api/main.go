package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-timesheet-go/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/hris-timesheet-go/internal/service/leave"
	projectService "github.com/cmlabs-hris/hris-timesheet-go/internal/service/project"
	weekOffService "github.com/cmlabs-hris/hris-timesheet-go/internal/service/weekoff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactor := postgresql.NewTransactor(db)
	weekOffRepo := postgresql.NewWeekOffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo, weekOffRepo, projectRepo)
	weekOffSvc := weekOffService.NewWeekOffService(weekOffRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, leaveService.NewReconciler())

	calendarHandler := appHTTP.NewCalendarHandler()
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	weekOffHandler := appHTTP.NewWeekOffHandler(weekOffSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		calendarHandler,
		attendanceHandler,
		weekOffHandler,
		projectHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port, "env", cfg.App.Env)
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
