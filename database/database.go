package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"trainerhub-app/internal/domain/sitedoc"
	"trainerhub-app/internal/store"

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

	if err := DB.AutoMigrate(&store.DocumentRecord{}); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	seedDefaultDocument()

	fmt.Println("✅ Connected and migrated successfully")
}

// seedDefaultDocument inserts the built-in site document on first boot so
// the public site has content before the admin ever saves.
func seedDefaultDocument() {
	var count int64
	if err := DB.Model(&store.DocumentRecord{}).Count(&count).Error; err != nil {
		log.Fatal("❌ Failed to inspect document table:", err)
	}
	if count > 0 {
		return
	}

	raw, err := json.Marshal(sitedoc.Default())
	if err != nil {
		log.Fatal("❌ Failed to encode default document:", err)
	}
	if err := DB.Create(&store.DocumentRecord{ID: 1, Data: raw}).Error; err != nil {
		log.Fatal("❌ Failed to seed default document:", err)
	}
	fmt.Println("✅ Seeded default site document")
}
