package main

import (
	"flag"
	"fmt"
	"os"

	"yano-school/app/config"
	"yano-school/app/database"
	"yano-school/app/models"
	"yano-school/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email admin@example.com -password secret")
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
