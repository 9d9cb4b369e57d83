package main

import (
	"fmt"
	"net/http"

	"github.com/unolo/fieldtrack-backend-go/internal/config"
	appHTTP "github.com/unolo/fieldtrack-backend-go/internal/handler/http"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/database"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/jwt"
	"github.com/unolo/fieldtrack-backend-go/internal/repository/postgresql"
	authService "github.com/unolo/fieldtrack-backend-go/internal/service/auth"
	checkinService "github.com/unolo/fieldtrack-backend-go/internal/service/checkin"
	reportService "github.com/unolo/fieldtrack-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(txManager, userRepo, jwtService, jwtRepo)
	checkinSvc := checkinService.NewCheckinService(txManager, checkinRepo, clientRepo, cfg.Checkin.RadiusMeters, cfg.Checkin.StoreTimeout)
	reportSvc := reportService.NewReportService(reportRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAuthHandler(jwtService, authSvc),
		appHTTP.NewCheckinHandler(checkinSvc),
		appHTTP.NewReportHandler(reportSvc),
		cfg.App.CORSOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
