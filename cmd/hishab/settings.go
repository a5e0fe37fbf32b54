package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/model"
)

func settingsCmd() *cobra.Command {
	var (
		language string
		theme    string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update display settings",
		Long:  `Without flags, show the current settings. Supported languages are bn and en; supported themes are light and dark.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			settings := store.Snapshot().Settings
			changed := false
			if cmd.Flags().Changed("language") {
				if !model.ValidLanguage(language) {
					return fmt.Errorf("invalid language %q, want bn or en", language)
				}
				settings.Language = language
				changed = true
			}
			if cmd.Flags().Changed("theme") {
				if !model.ValidTheme(theme) {
					return fmt.Errorf("invalid theme %q, want light or dark", theme)
				}
				settings.Theme = theme
				changed = true
			}

			if changed {
				if err := store.UpdateSettings(ctx, settings); err != nil {
					return fmt.Errorf("failed to update settings: %w", err)
				}
				fmt.Printf("%s Settings updated\n", cli.SuccessStyle.Render(cli.SuccessIcon))
			}

			fmt.Printf("Language: %s\n", settings.Language)
			fmt.Printf("Theme:    %s\n", settings.Theme)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Display language: bn or en")
	cmd.Flags().StringVar(&theme, "theme", "", "Color theme: light or dark")

	return cmd
}
