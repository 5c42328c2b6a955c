package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/upliftbot/uplift/internal/app"
	"github.com/upliftbot/uplift/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list [quotes|songs]",
	Short: "Export a catalog as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	quotes, songs, err := app.LoadEngines(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	switch args[0] {
	case "quotes":
		return enc.Encode(quotes.All())
	case "songs":
		return enc.Encode(songs.All())
	default:
		return fmt.Errorf("unknown catalog: %s (must be 'quotes' or 'songs')", args[0])
	}
}
