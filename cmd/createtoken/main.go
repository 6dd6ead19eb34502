package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"kasira.com/kasira/security"
)

func main() {
	id := flag.Int("id", 1, "operator id")
	user := flag.String("user", "admin", "operator username")
	location := flag.String("location", "central", "location code")
	email := flag.String("email", "", "operator email")
	expiry := flag.Int64("expiry", 3600*24, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("KASIRA_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("KASIRA_SIGNING_SECRET is required")
	}

	token, err := security.CreateIdentityToken(&security.OperatorIdentity{
		Id:       *id,
		UserName: *user,
		Location: *location,
		Email:    *email,
	}, secret, *expiry)
	if err != nil {
		log.Fatalf("failed to create token: %v", err)
	}

	fmt.Println(token)
}
