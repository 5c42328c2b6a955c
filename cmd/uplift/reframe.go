package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upliftbot/uplift/internal/app"
	"github.com/upliftbot/uplift/internal/config"
	"github.com/upliftbot/uplift/internal/emotion"
)

var reframeStyle string

var reframeCmd = &cobra.Command{
	Use:   "reframe [text]",
	Short: "Reframe a negative statement into a positive perspective",
	Long: `Classify a statement's emotion, then reframe it in the chosen style.

Example:
  uplift reframe "I always mess everything up" --style cbt`,
	Args: cobra.ExactArgs(1),
	RunE: runReframe,
}

func init() {
	reframeCmd.Flags().StringVar(&reframeStyle, "style", "", "reframing style: gentle, humorous, direct, cbt")
	rootCmd.AddCommand(reframeCmd)
}

func runReframe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	text := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForLLM(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	style := reframeStyle
	if style == "" {
		style = cfg.ReframeStyle
	}

	client, err := app.NewLLMClient(cfg)
	if err != nil {
		return err
	}

	result := emotion.NewAnalyzer(client).Classify(ctx, text)
	if result.IsCrisis {
		fmt.Println(emotion.CrisisMessage)
		return nil
	}

	transformer := emotion.NewTransformer(client, style)
	fmt.Printf("Feeling: %s %s\n\n", result.PrimaryEmotion, emotion.Emojis[result.PrimaryEmotion])
	fmt.Println(transformer.Reframe(ctx, text, result.PrimaryEmotion))
	return nil
}
