// Command createuser adds a dashboard operator account. Exits 0 on
// success, 1 on any failure.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/leefeettrends/admin-api/app/auth"
	"github.com/leefeettrends/admin-api/config"
)

func run(username, email, password string) error {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	var existing string
	err = db.QueryRow(
		`SELECT username FROM users WHERE username = $1 OR email = $2`,
		username, email,
	).Scan(&existing)
	switch {
	case err == nil:
		if existing == username {
			return fmt.Errorf("username %q already exists", username)
		}
		return fmt.Errorf("email %q already exists", email)
	case err != sql.ErrNoRows:
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	var id int64
	err = db.QueryRow(
		`INSERT INTO users (username, email, password_hash, is_active) VALUES ($1, $2, $3, true) RETURNING id`,
		username, email, hash,
	).Scan(&id)
	if err != nil {
		return err
	}

	fmt.Println("User created successfully!")
	fmt.Printf("  ID: %d\n", id)
	fmt.Printf("  Username: %s\n", username)
	fmt.Printf("  Email: %s\n", email)
	return nil
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: createuser <username> <email> <password>")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
