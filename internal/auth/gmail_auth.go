package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailService builds a Gmail client allowed to send mail. credentialsFile
// is the OAuth client secret (the app's ID) and tokenFile the stored user
// session. Run `placementctl gmail-login` once to create the token.
func GmailService(ctx context.Context, credentialsFile, tokenFile string) (*gmail.Service, error) {
	config, err := gmailConfig(credentialsFile)
	if err != nil {
		return nil, err
	}
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read gmail token %s: %w", tokenFile, err)
	}
	return gmail.NewService(ctx, option.WithHTTPClient(config.Client(ctx, tok)))
}

func gmailConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secret file: %w", err)
	}
	return config, nil
}

// GmailAuthURL returns the consent page the operator must open to
// authorise sending.
func GmailAuthURL(credentialsFile string) (string, error) {
	config, err := gmailConfig(credentialsFile)
	if err != nil {
		return "", err
	}
	return config.AuthCodeURL("state-token", oauth2.AccessTypeOffline), nil
}

// ExchangeGmailCode trades the code from the consent page for a token and
// stores it in tokenFile.
func ExchangeGmailCode(ctx context.Context, credentialsFile, tokenFile, code string) error {
	config, err := gmailConfig(credentialsFile)
	if err != nil {
		return err
	}
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("retrieve token from web: %w", err)
	}
	return saveToken(tokenFile, tok)
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
