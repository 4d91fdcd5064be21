package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"timeledger/internal/adapters/auth"
)

// Prints a bcrypt hash of the given password for the AUTH_PASSWORD_HASH setting.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	hash, err := auth.HashPassword(os.Args[1], bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
