package main

import (
	"log"

	"yano-school/app/config"
	"yano-school/app/database"
)

func main() {
	log.Println("Running migrations...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}
