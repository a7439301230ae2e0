package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/keyring"
)

// KeyringSetCmd stores the Gemini API key in the OS keyring.
type KeyringSetCmd struct {
	APIKey string `arg:"" help:"Gemini API key to store in the keyring."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("API key must not be empty")
	}
	if err := keyring.SetAPIKey(c.APIKey); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

// KeyringDeleteCmd removes the stored Gemini API key.
type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key stored.")
			return nil
		}
		return err
	}
	fmt.Println("API key removed from OS keyring.")
	return nil
}

// KeyringStatusCmd reports whether an API key is configured, never printing
// the key itself.
type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *cli.Context) error {
	_, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		fmt.Println("API key is configured.")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("No API key stored.")
	default:
		return err
	}
	return nil
}
