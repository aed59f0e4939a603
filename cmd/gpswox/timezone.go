package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) timezoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "timezone",
		Short:       "Print the account timezone",
		Args:        cobra.NoArgs,
		Annotations: needsClient(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			tz, err := a.client.Setup.GetCurrentTimezone(cmd.Context())
			if err != nil {
				return err
			}

			if tz == nil {
				fmt.Fprintln(a.stdout, "no timezone set")
				return nil
			}

			fmt.Fprintf(a.stdout, "%v (id %v)\n", tz["value"], tz["id"])

			return nil
		},
	}
}
