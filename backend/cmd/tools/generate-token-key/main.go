package main

import (
	"fmt"
	"log"

	"github.com/itchan-dev/bulletin/shared/jwt"
)

func main() {
	key, err := jwt.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate token key: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Println("  Token signing key (HS256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Add this to your backend/config/private.yaml:")
	fmt.Printf("token_key: \"%s\"\n", key)
	fmt.Println()
	fmt.Println("Tokens never expire, so rotating this key logs everyone out.")
	fmt.Println("Never commit it to version control.")
	fmt.Println("=================================================")
}
