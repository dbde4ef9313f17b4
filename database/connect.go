package database

import (
	"log"
	"time"

	"github.com/kamarini09/ctf-app/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(dsn string) {
	var err error
	// TranslateError surfaces duplicate-key violations as
	// gorm.ErrDuplicatedKey, which the join-code retry relies on.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Recycle connections before MySQL's wait_timeout closes them.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables creates the four tables. Challenge rows themselves are
// seeded out-of-band; the app only reads them.
func MigrateTables() {
	err := DB.AutoMigrate(&models.Profile{}, &models.Team{}, &models.Challenge{}, &models.Submission{})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
