package main

import (
	"errors"
	"fmt"

	"PortfolioSite/internal/client"

	"github.com/spf13/cobra"
)

var contactFields client.ContactFields

// contactCmd sends one contact form message
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact message",
	Args:  cobra.NoArgs,
	RunE:  runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactFields.Name, "name", "", "Your name")
	contactCmd.Flags().StringVar(&contactFields.Email, "email", "", "Your email address")
	contactCmd.Flags().StringVar(&contactFields.Subject, "subject", "", "Subject")
	contactCmd.Flags().StringVar(&contactFields.Message, "message", "", "Message body")
	_ = contactCmd.MarkFlagRequired("name")
	_ = contactCmd.MarkFlagRequired("email")
	_ = contactCmd.MarkFlagRequired("message")
}

func runContact(cmd *cobra.Command, args []string) error {
	form := client.NewContactForm(newClient())
	form.SetFields(contactFields)
	form.Submit(cmd.Context())

	if form.Status() != client.ContactSuccess {
		return errors.New(form.StatusText())
	}
	fmt.Fprintln(cmd.OutOrStdout(), form.StatusText())
	return nil
}
