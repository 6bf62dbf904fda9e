package db

import (
	"fmt"
	"log"

	"github.com/odroffice/odr-go/config"
	"github.com/odroffice/odr-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.Request{},
		&models.RequestDocument{},
		&models.RequestAssignment{},
		&models.Admin{},
		&models.AdminSetting{},
		&models.AppSetting{},
		&models.RequestChange{},
		&models.AuditLog{},
		&models.IntakeRestriction{},
		&models.AvailableDate{},
		&models.Document{},
		&models.Requirement{},
		&models.DocumentRequirement{},
		&models.RequestRequirementLink{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
