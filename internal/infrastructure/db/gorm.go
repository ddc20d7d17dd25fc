package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cashit-backend/internal/domain/area"
	"cashit-backend/internal/domain/customer"
	"cashit-backend/internal/domain/expense"
	"cashit-backend/internal/domain/loan"
	"cashit-backend/internal/domain/repayment"
	"cashit-backend/internal/domain/user"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can inject a mocked dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// duplicate-key errors surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// AutoMigrate keeps the schema in step with the entity structs.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&area.Area{},
		&customer.Customer{},
		&loan.Loan{},
		&repayment.Repayment{},
		&user.User{},
		&user.Otp{},
		&expense.Expense{},
	)
}
