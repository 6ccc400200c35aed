// createtable migrates the schema with gorm AutoMigrate. Run once
// before the first start and after model changes.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/modules/cart"
	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/modules/content"
	"bebeboutique.mx/app/internal/modules/orders"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&catalog.Collection{},
		&catalog.Product{},
		&catalog.Variant{},
		&catalog.Image{},
		&cart.Cart{},
		&cart.CartItem{},
		&orders.Order{},
		&orders.OrderItem{},
		&content.BlogPost{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("tables created")
}
