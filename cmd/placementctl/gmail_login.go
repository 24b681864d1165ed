package main

import (
	"fmt"

	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/config"
	"github.com/spf13/cobra"
)

// newGmailLoginCmd authorises the API server to send notification mail.
// The server itself never prompts.
func newGmailLoginCmd() *cobra.Command {
	env := config.NewViper()
	var credentials, tokenFile, code string
	cmd := &cobra.Command{
		Use:   "gmail-login",
		Short: "Authorise Gmail for notification emails",
		Long: `gmail-login creates the token file the API server uses to send mail.

Run it once without --code to get the consent URL, open it, then run it
again with the code Google shows you.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" {
				url, err := auth.GmailAuthURL(credentials)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Open this link in your browser, then rerun with --code:\n%s\n", url)
				return nil
			}
			if err := auth.ExchangeGmailCode(cmd.Context(), credentials, tokenFile, code); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved Gmail token to %s\n", tokenFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&credentials, "credentials", env.GetString("GMAIL_CREDENTIALS_FILE"), "OAuth client secret file")
	cmd.Flags().StringVar(&tokenFile, "token-file", env.GetString("GMAIL_TOKEN_FILE"), "where to store the token")
	cmd.Flags().StringVar(&code, "code", "", "authorisation code from the consent page")
	return cmd
}
