// Command token mints an access token for local testing of the timesheet API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/config"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id placed in the user_id claim")
	employeeID := flag.String("employee", "", "employee id placed in the employee_id claim")
	flag.Parse()

	if *employeeID == "" {
		fmt.Fprintln(os.Stderr, "-employee is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	token, expiresAt, err := svc.GenerateAccessToken(*userID, *employeeID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}
	if _, err := svc.ValidateAccessToken(token); err != nil {
		fmt.Fprintln(os.Stderr, "Generated token does not verify:", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n# expires at %d\n", token, expiresAt)
}
