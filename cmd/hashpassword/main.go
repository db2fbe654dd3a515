// Command hashpassword prints ADMIN_PASSWORD_SALT and ADMIN_PASSWORD_HASH lines for a password.
//
// Usage:
//
//	hashpassword [-cost 12] <password>
//	echo -n "$PASSWORD" | hashpassword
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kirubel-Te/Event-Next/internal/adapters/auth"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	password, err := readPassword(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpassword:", err)
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	salt, err := hasher.GenerateSalt()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpassword:", err)
		os.Exit(1)
	}
	hash, err := hasher.Hash(salt, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpassword:", err)
		os.Exit(1)
	}
	fmt.Printf("ADMIN_PASSWORD_SALT=%s\n", salt)
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}

func readPassword(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	return password, nil
}
