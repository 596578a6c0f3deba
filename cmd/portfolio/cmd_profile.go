package main

import (
	"encoding/json"
	"errors"

	"PortfolioSite/internal/client"

	"github.com/spf13/cobra"
)

// profileCmd prints the normalized profile
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the portfolio profile as JSON",
	Long: `Fetch the profile, resolve every media reference against the API origin
and print the result as indented JSON.`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	state := newClient().LoadProfile(cmd.Context())
	if state.Status != client.ProfileLoaded {
		return errors.New(state.Message())
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(state.Profile)
}
