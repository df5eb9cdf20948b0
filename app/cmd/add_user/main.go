package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new user")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "registrar", "role to assign (admin, registrar, accounting, librarian, guidance, parent)")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  hashed,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	if err := database.AssignUserRole(db, user.ID, *role); err != nil {
		fmt.Printf("Error assigning role: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n", user.FirstName, user.LastName, user.Email, *role)
}
