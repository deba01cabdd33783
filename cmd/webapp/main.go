package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/weegigs/wee-webapp-go/support"
)

var rootCmd = &cobra.Command{
	Use:           "webapp",
	Short:         "Serve the wee web app and its message counter",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configure(cmd)
		if err != nil {
			return err
		}

		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().IntP("port", "p", 0, "Port to listen on, overrides PORT")
	rootCmd.Flags().String("static-dir", "", "Directory holding the index file, overrides STATIC_DIR")
}

func configure(cmd *cobra.Command) (support.Config, error) {
	cfg, err := support.LoadConfig()
	if err != nil {
		return support.Config{}, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	if cmd.Flags().Changed("static-dir") {
		cfg.StaticDir, _ = cmd.Flags().GetString("static-dir")
	}

	if err := cfg.Validate(); err != nil {
		return support.Config{}, err
	}

	return cfg, nil
}

func run(ctx context.Context, cfg support.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup, err := support.TracerProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return server(cfg).Run(ctx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("webapp failed")
		os.Exit(1)
	}
}
