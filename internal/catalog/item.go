package catalog

// Item is what the matching engine needs from a catalog entry.
// Tags feed the emotion index, Themes feed the broad-appeal fallback,
// Year and Category feed the relevance scoring.
type Item interface {
	ItemID() string
	Tags() []string
	Themes() []string
	Year() int
	Category() string
}

// Quote is a movie quote catalog entry.
type Quote struct {
	ID          string   `json:"id" validate:"required"`
	Text        string   `json:"text" validate:"required"`
	Movie       string   `json:"movie" validate:"required"`
	Character   string   `json:"character"`
	ReleaseYear int      `json:"year"`
	Emotions    []string `json:"emotions"`
	ThemeTags   []string `json:"themes"`
	Genre       string   `json:"genre"`
}

func (q Quote) ItemID() string   { return q.ID }
func (q Quote) Tags() []string   { return q.Emotions }
func (q Quote) Themes() []string { return q.ThemeTags }
func (q Quote) Year() int        { return q.ReleaseYear }
func (q Quote) Category() string { return q.Genre }

// Song is a song catalog entry. The song vocabulary keeps everything in
// the emotions list, so Themes mirrors Tags.
type Song struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Artist      string   `json:"artist" validate:"required"`
	Emotions    []string `json:"emotions"`
	Theme       string   `json:"theme"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"year"`
	SpotifyURL  string   `json:"spotify_url"`
	YouTubeURL  string   `json:"youtube_url"`
	WhyItHelps  string   `json:"why_it_helps"`
}

func (s Song) ItemID() string   { return s.ID }
func (s Song) Tags() []string   { return s.Emotions }
func (s Song) Themes() []string { return s.Emotions }
func (s Song) Year() int        { return s.ReleaseYear }
func (s Song) Category() string { return s.Artist }
