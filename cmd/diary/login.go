package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewLoginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE:  makeLoginRunner(a),
	}

	cmd.Flags().StringP("username", "u", "", "Username")
	cmd.Flags().StringP("password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func makeLoginRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		auth, err := a.authenticator(api)
		if err != nil {
			return err
		}

		result, err := auth.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", result.Username)
		if exp, ok := a.session().TokenExpiry(); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Session expires %s\n", exp.Local().Format("Jan 2 15:04"))
		}
		return nil
	}
}
