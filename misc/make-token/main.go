// Dev helper: mint a bearer token for the emulator.
//
//	go run ./misc/make-token -email admin@example.com -role admin
//
// The printed token goes into ACCESS_TOKEN in .env.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	email := flag.String("email", "", "identity to embed in the token")
	role := flag.String("role", "user", "role claim: user, rider or admin")
	secret := flag.String("secret", "dev-secret", "HS256 signing secret, must match the emulator's JWT_SECRET")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	claims := jwt.MapClaims{
		"email": *email,
		"role":  *role,
		"exp":   jwt.NewNumericDate(time.Now().Add(*ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(signed)
}
