package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/api"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/config"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload PATH",
		Short: "Upload a product image and print its hosted URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}

			path := config.ExpandPath(args[0])
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot read image: %w", err)
			}

			client, err := api.NewClient(api.Options{
				BaseURL: cfg.APIBaseURL,
				Token:   cfg.APIToken,
				Timeout: cfg.Timeout,
				Retry:   cfg.Retry(),
			}, slog.Default())
			if err != nil {
				return err
			}

			url, err := client.UploadImage(cmd.Context(), path)
			if err != nil {
				return common.NewUserError("image upload failed", err)
			}

			fmt.Println(cli.FormatSuccess("uploaded " + path))
			fmt.Println(url)
			return nil
		},
	}
}
