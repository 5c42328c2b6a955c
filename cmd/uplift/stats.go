package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upliftbot/uplift/internal/app"
	"github.com/upliftbot/uplift/internal/config"
	"github.com/upliftbot/uplift/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog and session statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	fmt.Println("=== Catalogs ===")
	fmt.Printf("Quotes: %d\n", len(quotes.All()))
	fmt.Printf("Songs:  %d\n", len(songs.All()))

	store, err := session.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	st, err := store.CollectStats(ctx)
	if err != nil {
		return fmt.Errorf("collect stats: %w", err)
	}

	fmt.Println()
	fmt.Println("=== Sessions ===")
	fmt.Printf("Sessions:     %d\n", st.Sessions)
	fmt.Printf("Shown quotes: %d\n", st.ShownQuotes)
	fmt.Printf("Shown songs:  %d\n", st.ShownSongs)
	fmt.Printf("Favorites:    %d\n", st.Favorites)
	return nil
}
