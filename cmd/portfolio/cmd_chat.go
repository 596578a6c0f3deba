package main

import (
	"bufio"
	"fmt"
	"strings"

	"PortfolioSite/internal/client"

	"github.com/spf13/cobra"
)

// chatCmd runs an interactive chat with the portfolio assistant
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the portfolio AI assistant",
	Long: `Start a line-oriented chat. Each line is sent as one message and the
assistant reply is printed below it. Type /quit or send EOF to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	session := client.NewSession(newClient())
	defer session.Close()

	for _, m := range session.Messages() {
		fmt.Fprintf(out, "ai> %s\n", m.Text)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			return nil
		}

		before := len(session.Messages())
		if !session.Send(cmd.Context(), line) {
			continue
		}
		for _, m := range session.Messages()[before:] {
			if m.Role == client.RoleAI {
				fmt.Fprintf(out, "ai> %s\n", m.Text)
			}
		}
	}
}
