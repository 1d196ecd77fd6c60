package database

import (
	"fmt"
	"log"
	"os"

	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
	"timetable-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},

		// security
		&security.Authority{},
		&security.AuthorityQualifier{},

		// timetabling catalogs
		&timetable.Session{},
		&timetable.Department{},
		&timetable.RoomType{},
		&timetable.Building{},
		&timetable.FeatureType{},
		&timetable.ExamType{},
		&timetable.Exam{},
		&timetable.RoomGroup{},
		&timetable.RoomFeature{},
		&timetable.PreferenceLevel{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Database connected and migrated")
}
