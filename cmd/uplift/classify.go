package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upliftbot/uplift/internal/app"
	"github.com/upliftbot/uplift/internal/config"
	"github.com/upliftbot/uplift/internal/emotion"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify the emotion of a message",
	Long: `Run the emotion classifier on a single message and print the result.

Example:
  uplift classify "I can't stop worrying about tomorrow"`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForLLM(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	client, err := app.NewLLMClient(cfg)
	if err != nil {
		return err
	}

	result := emotion.NewAnalyzer(client).Classify(ctx, args[0])

	if result.IsCrisis {
		fmt.Println(emotion.CrisisMessage)
		return nil
	}

	fmt.Printf("Primary emotion: %s %s\n", result.PrimaryEmotion, emotion.Emojis[result.PrimaryEmotion])
	fmt.Printf("Intensity:       %.2f\n", result.Intensity)
	if len(result.SecondaryEmotions) > 0 {
		fmt.Printf("Secondary:       %s\n", strings.Join(result.SecondaryEmotions, ", "))
	}
	return nil
}
