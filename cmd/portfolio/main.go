package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"PortfolioSite/internal/client"
	"PortfolioSite/internal/config"
	"PortfolioSite/internal/logger"

	"github.com/spf13/cobra"
)

var (
	apiBase string
	verbose bool
	timeout time.Duration
)

// rootCmd is the portfolio site command-line client
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Command-line client for the portfolio site API",
	Long: `Browse the portfolio profile, chat with the portfolio assistant and
send contact messages from the terminal.

Available commands:
  profile - Print the normalized profile as JSON
  chat    - Chat with the AI assistant
  contact - Send a contact message`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		cfg.LogFile = ""
		cfg.LogLevel = "warn"
		if verbose {
			cfg.LogLevel = "debug"
		}
		_, err := logger.Init(cfg)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api-base", "", "API origin (default API_BASE_URL or "+config.DefaultAPIBaseURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout (0 = none)")

	rootCmd.AddCommand(profileCmd, chatCmd, contactCmd)
}

// newClient builds an API client from --api-base, falling back to config
func newClient() *client.Client {
	base := apiBase
	if base == "" {
		base = config.Load().APIBaseURL
	}
	return client.New(base, httpClient())
}

// httpClient applies --timeout only when it is set
func httpClient() *http.Client {
	if timeout <= 0 {
		return http.DefaultClient
	}
	return &http.Client{Timeout: timeout}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
