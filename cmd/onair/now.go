package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/genricoloni/onair/internal/display"
	"github.com/genricoloni/onair/internal/domain"
	"github.com/genricoloni/onair/internal/fetcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const nowTimeout = 10 * time.Second

func newNowCmd(opts *rootOptions) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the track on air and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), nowTimeout)
			defer cancel()

			info, err := fetcher.NewHTTPFetcher(zap.NewNop(), cfg.InfoURL()).Fetch(ctx)
			if err != nil {
				return fmt.Errorf("%s", domain.Describe(err))
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintln(out, display.Sanitize(info.SongTitle))
			fmt.Fprintln(out, display.Sanitize(info.ArtistName))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "onair %s\n", version)
		},
	}
}
