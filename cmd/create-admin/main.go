package main

import (
	"flag"
	"log"

	"spareparts-backend/internal/config"
	"spareparts-backend/internal/repository"
	"spareparts-backend/internal/service"
	"spareparts-backend/pkg/database"

	"github.com/joho/godotenv"
)

// Bootstraps the one-time admin account from the command line, for setups
// where the create-admin endpoint is not reachable.
func main() {
	username := flag.String("username", "admin", "admin username")
	pass := flag.String("password", "", "admin password")
	flag.Parse()

	if *pass == "" {
		log.Fatal("-password is required")
	}

	// 1. Load Env & Config
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseDSN)

	// 3. Create the admin
	userRepo := repository.NewUserRepo(db)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))

	admin, err := authService.CreateAdmin(*username, *pass)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin user %q created (id %s)", admin.Username, admin.ID)
}
