package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the API hash",
		Long: "Log in with email and password and print the API hash.\n" +
			"The password is prompted for when --password is not given.",
		Args:        cobra.NoArgs,
		Annotations: needsClient(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				email = a.cfg.Email
			}
			if email == "" {
				var err error
				if email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}

			if password == "" {
				fmt.Fprint(a.stderr, "Password: ")
				secret, err := readPassword()
				fmt.Fprintln(a.stderr)
				if err != nil {
					return errors.Wrap(err, "failed to read password")
				}
				password = string(secret)
			}

			hash, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, hash)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (default from config)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")

	return cmd
}

func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.stderr, label)

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}
