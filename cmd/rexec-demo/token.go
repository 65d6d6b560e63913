package main

import (
	"errors"
	"os"
	"strings"

	"github.com/99designs/keyring"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Keyring namespace and key for the stored access token.
const (
	keyringService  = "rexec-demo"
	keyringTokenKey = "access_token"
)

func openRing() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{
		ServiceName: keyringService,
	})
}

// resolveToken returns the access token from, in order: the --token
// flag, the REXEC_TOKEN environment variable, the OS keyring. An empty
// result from all three is a fatal configuration error, raised before
// any network call.
func resolveToken() (string, error) {
	if tokenFlag != "" {
		return tokenFlag, nil
	}
	if v := os.Getenv("REXEC_TOKEN"); v != "" {
		return v, nil
	}
	ring, err := openRing()
	if err == nil {
		if item, err := ring.Get(keyringTokenKey); err == nil && len(item.Data) > 0 {
			return string(item.Data), nil
		}
	}
	return "", errors.New("no access token: pass --token, set REXEC_TOKEN, or run 'rexec-demo token set'")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the access token stored in the OS keyring",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store an access token in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := pterm.DefaultInteractiveTextInput.
			WithMask("*").
			Show("Access token")
		if err != nil {
			return err
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return errors.New("token is empty, nothing stored")
		}

		ring, err := openRing()
		if err != nil {
			return err
		}
		if err := ring.Set(keyring.Item{
			Key:   keyringTokenKey,
			Data:  []byte(token),
			Label: "rexec workspace access token",
		}); err != nil {
			return err
		}
		pterm.Success.Println("Token stored")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		ring, err := openRing()
		if err != nil {
			return err
		}
		if err := ring.Remove(keyringTokenKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
			return err
		}
		pterm.Success.Println("Token removed")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
}
