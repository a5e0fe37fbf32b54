package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/cli"
)

func profileCmd() *cobra.Command {
	var (
		name   string
		email  string
		avatar string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the profile",
		Long:  `Without flags, show the current profile. With flags, update the given fields and leave the rest unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			profile := store.Snapshot().Profile
			changed := false
			if cmd.Flags().Changed("name") {
				profile.Name = name
				changed = true
			}
			if cmd.Flags().Changed("email") {
				profile.Email = email
				changed = true
			}
			if cmd.Flags().Changed("avatar") {
				profile.Avatar = avatar
				changed = true
			}

			if changed {
				if err := store.UpdateProfile(ctx, profile); err != nil {
					return fmt.Errorf("failed to update profile: %w", err)
				}
				fmt.Printf("%s Profile updated\n", cli.SuccessStyle.Render(cli.SuccessIcon))
			}

			fmt.Printf("Name:  %s\n", cli.BoldStyle.Render(profile.Name))
			fmt.Printf("Email: %s\n", profile.Email)
			if profile.Avatar != "" {
				fmt.Printf("Avatar: %s\n", cli.SubtleStyle.Render(fmt.Sprintf("(%d bytes)", len(profile.Avatar))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar image data URI")

	return cmd
}
