package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studia-cl/studia-mobile/internal/app"
)

var flagPassword string

var loginCmd = &cobra.Command{
	Use:     "login <email>",
	Short:   "Log in as a student.",
	Example: "studia login alumno@duocuc.cl --password secreto",
	Args:    cobra.ExactArgs(1),
	RunE: runWithApp(func(ctx context.Context, a *app.App, args []string) error {
		password := flagPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		result := a.Session.Login(ctx, args[0], password)
		return printJSON(result)
	}),
}

func init() {
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}
