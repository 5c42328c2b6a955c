package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upliftbot/uplift/internal/app"
	"github.com/upliftbot/uplift/internal/catalog"
	"github.com/upliftbot/uplift/internal/config"
	"github.com/upliftbot/uplift/internal/emotion"
	"github.com/upliftbot/uplift/internal/session"
)

var chatResume bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive support conversation",
	Long: `Start an interactive conversation. Each message is classified,
reframed into a positive perspective, and answered with matching
movie quotes and songs.

In-chat commands:
  /quote          one more quote for the current feeling
  /song           one more song for the current feeling
  /fav quote <id> save a favorite
  /style <name>   switch reframing style (gentle, humorous, direct, cbt)
  /quit           leave`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatResume, "resume", false, "resume the most recent session")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForChat(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := openSession(ctx, a)
	if err != nil {
		return err
	}
	sess.MessageLimit = cfg.MaxMessages

	fmt.Printf("Session %s — tell me how you're feeling. /quit to leave.\n\n", sess.ID)

	loop := &chatLoop{app: a, sess: sess, feeling: "neutral"}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}
		if strings.HasPrefix(line, "/") {
			loop.command(ctx, line)
			continue
		}
		if !sess.AllowMessage() {
			fmt.Println("This session has reached its message limit. Start a fresh one with `uplift chat`.")
			break
		}
		loop.turn(ctx, line)
		if err := a.Store.Save(ctx, sess); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Println("\nTake care of yourself. 💜")
	return a.Store.Save(ctx, sess)
}

func openSession(ctx context.Context, a *app.App) (*session.Session, error) {
	if chatResume {
		id, err := a.Store.LatestSessionID(ctx)
		if err != nil {
			return nil, err
		}
		if id != "" {
			return a.Store.Load(ctx, id)
		}
	}
	sess := session.New()
	if err := a.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// chatLoop carries the per-conversation state the REPL needs between turns.
type chatLoop struct {
	app     *app.App
	sess    *session.Session
	feeling string // last classified primary emotion
}

// turn runs the full pipeline for one user message.
func (l *chatLoop) turn(ctx context.Context, text string) {
	result := l.app.Analyzer.Classify(ctx, text)

	// The crisis gate stops everything else.
	if result.IsCrisis {
		fmt.Println()
		fmt.Println(emotion.CrisisMessage)
		fmt.Println()
		return
	}
	l.feeling = result.PrimaryEmotion

	fmt.Printf("\n(%s %s, intensity %.1f)\n\n",
		result.PrimaryEmotion, emotion.Emojis[result.PrimaryEmotion], result.Intensity)

	fmt.Println(l.app.Chat.Respond(ctx, text))
	fmt.Println()
	fmt.Println(l.app.Transformer.Reframe(ctx, text, result.PrimaryEmotion))
	fmt.Println()

	for _, q := range l.app.Quotes.Match(result.PrimaryEmotion, l.app.Config.MatchCount, l.sess.ShownQuotes) {
		l.showQuote(ctx, q)
	}
	for _, s := range l.app.Songs.Match(result.PrimaryEmotion, l.app.Config.MatchCount, l.sess.ShownSongs) {
		l.showSong(ctx, s)
	}
}

func (l *chatLoop) command(ctx context.Context, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quote":
		q, repeat := l.app.Quotes.GetAnother(l.feeling, l.sess.ShownQuotes)
		if repeat {
			fmt.Println("(you've seen every match, so this may be a repeat)")
		}
		l.showQuote(ctx, q)
	case "/song":
		s, repeat := l.app.Songs.GetAnother(l.feeling, l.sess.ShownSongs)
		if repeat {
			fmt.Println("(you've heard every match, so this may be a repeat)")
		}
		l.showSong(ctx, s)
	case "/style":
		if len(fields) < 2 {
			fmt.Printf("styles: %s\n", strings.Join(emotion.Styles(), ", "))
			return
		}
		l.app.Transformer.SetStyle(fields[1])
		fmt.Printf("reframing style is now %s\n", l.app.Transformer.Style())
	case "/fav":
		if len(fields) < 3 {
			fmt.Println("usage: /fav quote <id> or /fav song <id>")
			return
		}
		l.favorite(ctx, fields[1], fields[2])
	default:
		fmt.Printf("unknown command %s\n", fields[0])
	}
}

func (l *chatLoop) favorite(ctx context.Context, contentType, id string) {
	switch contentType {
	case "quote":
		if l.sess.AddFavorite(session.ContentQuote, id) {
			if err := l.app.Store.AddFavorite(ctx, l.sess.ID, session.ContentQuote, id); err != nil {
				fmt.Printf("could not save favorite: %v\n", err)
				return
			}
		}
	case "song":
		if l.sess.AddFavorite(session.ContentSong, id) {
			if err := l.app.Store.AddFavorite(ctx, l.sess.ID, session.ContentSong, id); err != nil {
				fmt.Printf("could not save favorite: %v\n", err)
				return
			}
		}
	default:
		fmt.Println("usage: /fav quote <id> or /fav song <id>")
		return
	}
	fmt.Printf("saved %s %s\n", contentType, id)
}

func (l *chatLoop) showQuote(ctx context.Context, q catalog.Quote) {
	fmt.Printf("🎬 \"%s\"\n   — %s, %s (%d)  [%s]\n\n",
		q.Text, q.Character, q.Movie, q.ReleaseYear, q.ID)
	l.sess.MarkQuoteShown(q.ID)
	if err := l.app.Store.MarkShown(ctx, l.sess.ID, session.ContentQuote, q.ID); err != nil {
		fmt.Printf("could not record quote: %v\n", err)
	}
}

func (l *chatLoop) showSong(ctx context.Context, s catalog.Song) {
	fmt.Printf("🎵 %s — %s (%d)\n   %s\n", s.Title, s.Artist, s.ReleaseYear, s.Theme)
	if s.WhyItHelps != "" {
		fmt.Printf("   %s\n", s.WhyItHelps)
	}
	if s.SpotifyURL != "" {
		fmt.Printf("   %s\n", s.SpotifyURL)
	}
	fmt.Printf("   [%s]\n\n", s.ID)
	l.sess.MarkSongShown(s.ID)
	if err := l.app.Store.MarkShown(ctx, l.sess.ID, session.ContentSong, s.ID); err != nil {
		fmt.Printf("could not record song: %v\n", err)
	}
}
