package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "cashit-backend/internal/adapter/http"
	"cashit-backend/internal/adapter/middleware"
	"cashit-backend/internal/adapter/repository/mysql"
	"cashit-backend/internal/config"
	"cashit-backend/internal/infrastructure/cache"
	"cashit-backend/internal/infrastructure/db"
	"cashit-backend/internal/infrastructure/mail"
	"cashit-backend/internal/infrastructure/storage"
	areaUC "cashit-backend/internal/usecase/area"
	authUC "cashit-backend/internal/usecase/auth"
	customerUC "cashit-backend/internal/usecase/customer"
	expenseUC "cashit-backend/internal/usecase/expense"
	loanUC "cashit-backend/internal/usecase/loan"
	repaymentUC "cashit-backend/internal/usecase/repayment"
	reportUC "cashit-backend/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	files, err := storage.New(cfg.StorageBackend, cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	mailer := mail.NewMailer(cfg)

	// repositories
	areas := mysql.NewAreaRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	repayments := mysql.NewRepaymentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	otps := mysql.NewOtpRepository(gdb)
	expenses := mysql.NewExpenseRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	areaUc := areaUC.NewUsecase(areas)
	customerUc := customerUC.NewUsecase(areas, customers, loans, uow, files)
	loanUc := loanUC.NewUsecase(customers, loans, repayments, uow)
	repaymentUc := repaymentUC.NewUsecase(repayments, loans, customers, uow, mailer)
	reportUc := reportUC.NewUsecase(areas, customers, loans, repayments, expenses, rdb)
	authUc := authUC.NewUsecase(users, otps, mailer,
		[]byte(cfg.JWT.Secret),
		time.Duration(cfg.JWT.ExpiresHours)*time.Hour,
		time.Duration(cfg.OtpTTLMinutes)*time.Minute,
	)
	expenseUc := expenseUC.NewUsecase(expenses)

	// handlers
	h := httpadp.NewHandler()
	areaH := httpadp.NewAreaHandler(areaUc)
	customerH := httpadp.NewCustomerHandler(customerUc)
	loanH := httpadp.NewLoanHandler(loanUc)
	repaymentH := httpadp.NewRepaymentHandler(repaymentUc)
	userH := httpadp.NewUserHandler(authUc)
	authH := httpadp.NewAuthHandler(authUc)
	reportH := httpadp.NewReportHandler(reportUc)
	expenseH := httpadp.NewExpenseHandler(expenseUc)
	exportH := httpadp.NewExportHandler(loanUc, repaymentUc)
	uploadH := httpadp.NewUploadHandler(files)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.Static("/uploads", cfg.UploadDir)

	// public auth surface
	e.POST("/api/auth/login", authH.Login)
	e.POST("/api/send-otp", authH.SendOtp)
	e.POST("/api/verify-otp", authH.VerifyOtp)
	e.POST("/api/reset-password", authH.ResetPassword)

	api := e.Group("/api", middleware.Auth([]byte(cfg.JWT.Secret)))

	api.GET("/area", areaH.List)
	api.POST("/area", areaH.Create)
	api.GET("/area/:short_code", areaH.Get)

	api.GET("/customers", customerH.List)
	api.POST("/customers", customerH.Onboard)
	api.GET("/customers/:customer_code", customerH.Get)
	api.PUT("/customers/:customer_code", customerH.Update)
	api.DELETE("/customers/:customer_code", customerH.Delete)

	// payment mutations are deduplicated through the idempotency store
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.GET("/loans", loanH.List)
	api.POST("/loans", loanH.Create, idemp)
	api.GET("/loans/:loan_id", loanH.Get)
	api.PUT("/loans/:loan_id", loanH.Update, idemp)
	api.DELETE("/loans/:loan_id", loanH.Delete)

	api.GET("/repayments", repaymentH.List)
	api.POST("/repayments", repaymentH.Create, idemp)
	api.PUT("/repayments/:repayment_id", repaymentH.Update, idemp)
	api.PATCH("/repayments/:repayment_id", repaymentH.MarkPaid, idemp)
	api.DELETE("/repayments/:repayment_id", repaymentH.Delete)

	admin := api.Group("/users", middleware.RequireRole("ADMIN"))
	admin.GET("", userH.List)
	admin.POST("", userH.Create)
	admin.PUT("/:username", userH.Update)
	admin.DELETE("/:username", userH.Delete)

	api.GET("/reports/dashboard", reportH.Dashboard)
	api.GET("/reports/monthly", reportH.Monthly)
	api.GET("/reports/areawise", reportH.Areawise)
	api.GET("/reports/customers/:customer_code", reportH.Customer)

	api.GET("/export/loans.csv", exportH.Loans)
	api.GET("/export/repayments.csv", exportH.Repayments)

	api.GET("/expenses", expenseH.List)
	api.POST("/expenses", expenseH.Create)
	api.GET("/expenses/:expense_id", expenseH.Get)
	api.PUT("/expenses/:expense_id", expenseH.Update)
	api.DELETE("/expenses/:expense_id", expenseH.Delete)

	api.POST("/upload", uploadH.Upload)

	go func() {
		addr := ":" + cfg.AppPort
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
}
