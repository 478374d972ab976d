package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "diary",
		Short:         "Front end for the memo diary API",
		Long:          `Browse, create, and manage numbered diary memos stored on a remote API server.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	if a != nil {
		addSubcommands(rootCmd, a)
	}

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("api", "", "API base URL override")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
}

func addSubcommands(root *cobra.Command, a *app) {
	root.AddCommand(
		NewListCmd(a),
		NewShowCmd(a),
		NewNewCmd(a),
		NewEditCmd(a),
		NewDelCmd(a),
		NewStatsCmd(a),
		NewLoginCmd(a),
		NewLogoutCmd(a),
		NewWhoamiCmd(a),
		NewServeCmd(a),
	)
}
