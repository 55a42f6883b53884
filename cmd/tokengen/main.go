package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"skyward/aerodrome/internal/auth"
	"skyward/aerodrome/internal/constants"
)

// tokengen mints a signed bearer token for local testing and operator
// access. The secret comes from JWT_SECRET, same as the server.
func main() {
	userID := flag.String("user", "", "user id (defaults to a fresh UUID)")
	admin := flag.Bool("admin", false, "grant the admin role")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	uid := *userID
	if uid == "" {
		uid = uuid.NewString()
	}

	role := constants.RolePassenger
	if *admin {
		role = constants.RoleAdmin
	}

	token, err := auth.MintToken(secret, uid, role, *ttl)
	if err != nil {
		log.Fatalf("mint token: %v", err)
	}

	fmt.Println("User ID:", uid)
	fmt.Println("Role:   ", role.String())
	fmt.Println("Token:  ", token)
}
