package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upliftbot/uplift/internal/app"
	"github.com/upliftbot/uplift/internal/config"
	"github.com/upliftbot/uplift/internal/emotion"
)

var (
	matchCount   int
	matchContent string
	matchSeed    int64
	matchExclude []string
)

var matchCmd = &cobra.Command{
	Use:   "match [emotion]",
	Short: "Match catalog content to an emotion",
	Long: `Run the matching engine offline for a given emotion, without the
classifier. Useful for inspecting catalog coverage and ranking.

Example:
  uplift match sadness --content songs --count 5
  uplift match anxiety --seed 42 --exclude q-001,q-002`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchCount, "count", 3, "number of items to return")
	matchCmd.Flags().StringVar(&matchContent, "content", "quotes", "content type: quotes or songs")
	matchCmd.Flags().Int64Var(&matchSeed, "seed", 0, "pin the rotation seed (0 means random)")
	matchCmd.Flags().StringSliceVar(&matchExclude, "exclude", nil, "item IDs to exclude")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	feeling := strings.ToLower(args[0])

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	exclude := make(map[string]bool, len(matchExclude))
	for _, id := range matchExclude {
		exclude[id] = true
	}

	var rng *rand.Rand
	if matchSeed != 0 {
		rng = rand.New(rand.NewSource(matchSeed))
	}

	emoji := emotion.Emojis[feeling]
	fmt.Printf("Matching %s %s\n\n", feeling, emoji)

	switch matchContent {
	case "quotes":
		quotes, _, err := app.LoadEngines(cfg)
		if err != nil {
			return err
		}
		if rng != nil {
			quotes.SetRand(rng)
		}
		for i, q := range quotes.Match(feeling, matchCount, exclude) {
			fmt.Printf("%d. \"%s\"\n   — %s, %s (%d)\n   [%s]\n\n",
				i+1, q.Text, q.Character, q.Movie, q.ReleaseYear, q.ID)
		}
	case "songs":
		_, songs, err := app.LoadEngines(cfg)
		if err != nil {
			return err
		}
		if rng != nil {
			songs.SetRand(rng)
		}
		for i, s := range songs.Match(feeling, matchCount, exclude) {
			fmt.Printf("%d. %s — %s (%d)\n   %s\n   [%s]\n\n",
				i+1, s.Title, s.Artist, s.ReleaseYear, s.Theme, s.ID)
		}
	default:
		return fmt.Errorf("unknown content type: %s (must be 'quotes' or 'songs')", matchContent)
	}

	return nil
}
