// Package emotion classifies user text into an emotion signal and
// reframes negative statements. Crisis detection gates everything: a
// crisis result must stop content matching entirely.
package emotion

// Result is the outcome of classifying one user message.
type Result struct {
	PrimaryEmotion    string   `json:"primary_emotion"`
	Intensity         float64  `json:"intensity"`
	SecondaryEmotions []string `json:"secondary_emotions"`
	IsCrisis          bool     `json:"-"`
}

// Canonical is the set of primary emotions the classifier is asked to
// choose from. The matcher tolerates labels outside this set.
var Canonical = []string{
	"sadness", "anxiety", "anger", "loneliness",
	"disappointment", "fear", "frustration", "joy", "neutral",
}

// Emojis decorates emotion labels in terminal output.
var Emojis = map[string]string{
	"sadness":        "😢",
	"anxiety":        "😰",
	"anger":          "😠",
	"loneliness":     "😔",
	"disappointment": "😞",
	"fear":           "😨",
	"frustration":    "😤",
	"joy":            "😊",
	"neutral":        "😐",
}

// crisisKeywords are self-harm indicators checked before any LLM call.
var crisisKeywords = []string{
	"kill myself", "end my life", "want to die", "better off dead",
	"hurt myself", "suicide", "no point living", "can't go on",
	"end it all", "not worth living",
}

// CrisisMessage is shown instead of matched content when the crisis
// gate trips.
const CrisisMessage = `If you're in crisis, please reach out for professional help:

  - 988 Suicide & Crisis Lifeline: call or text 988
  - Crisis Text Line: text HOME to 741741
  - International Association for Suicide Prevention:
    https://www.iasp.info/resources/Crisis_Centres/

You don't have to go through this alone. Professional help is available 24/7.`

// neutralDefault is substituted whenever classification fails.
// Classification failures must never break the conversation.
func neutralDefault() Result {
	return Result{
		PrimaryEmotion:    "neutral",
		Intensity:         0.5,
		SecondaryEmotions: []string{},
	}
}

// crisisResult short-circuits the pipeline.
func crisisResult() Result {
	return Result{
		PrimaryEmotion:    "crisis",
		Intensity:         1.0,
		SecondaryEmotions: []string{},
		IsCrisis:          true,
	}
}
