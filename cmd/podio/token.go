package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/podio/auth"
)

func newTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Authenticate and print the issued token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			authorizer, err := auth.NewAuthorizer(a.cfg.Domain, a.cfg.Grant(), auth.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := authorizer.Authorize(cmd.Context()); err != nil {
				return err
			}

			tok, _ := authorizer.Current()
			data, err := json.MarshalIndent(tok, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}
