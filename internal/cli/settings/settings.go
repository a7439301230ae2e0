package settings

import (
	"fmt"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Language *string `help:"Interface language (am|en)."`
	DarkMode *bool   `help:"Enable or disable dark mode."`
	Name     *string `help:"Display name used in greetings."`
}

func (c *SettingsCmd) Validate() error {
	if c.Language != nil && !models.ValidLanguage(*c.Language) {
		return fmt.Errorf("language must be am or en, got %q", *c.Language)
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.List {
		s := ctx.Service.Settings()
		fmt.Println("Current Settings:")
		fmt.Printf("  Language:  %s\n", s.Language)
		fmt.Printf("  Dark Mode: %v\n", s.DarkMode)
		fmt.Printf("  Name:      %s\n", s.Name)
		return nil
	}

	updated := false
	if c.Language != nil {
		if err := ctx.Service.SetLanguage(models.Language(*c.Language)); err != nil {
			return err
		}
		updated = true
	}
	if c.DarkMode != nil {
		ctx.Service.SetDarkMode(*c.DarkMode)
		updated = true
	}
	if c.Name != nil {
		ctx.Service.SetName(*c.Name)
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
