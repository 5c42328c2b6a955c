package emotion

// classifySystemPrompt keeps the classifier terse and consistent.
const classifySystemPrompt = `You are an emotion classification assistant. You respond only with the requested JSON object, nothing else.`

// classifyPrompt asks for a strict JSON object. The response is still
// parsed leniently since models like to wrap JSON in code fences.
const classifyPrompt = `Analyze the emotional content of the following message. Identify:
1. Primary emotion (sadness, anxiety, anger, loneliness, disappointment, fear, frustration, joy, neutral)
2. Intensity (0.0 to 1.0, where 0.0 is very mild and 1.0 is very intense)
3. Any secondary emotions (list up to 2)

Message: "%s"

Respond in this exact JSON format (no markdown, just plain JSON):
{
  "primary_emotion": "...",
  "intensity": 0.0,
  "secondary_emotions": []
}`

// stylePrompts reframe a negative statement into a positive
// perspective in one of four registers.
var stylePrompts = map[string]string{
	"gentle": `The user said: "%s"
They are feeling %s. Gently reframe this statement into a more positive,
hopeful perspective while validating their feelings. Be warm and compassionate.
Avoid toxic positivity. Keep it conversational and under 100 words.
Start by acknowledging their feelings, then offer the alternative perspective.`,

	"humorous": `The user said: "%s"
They are feeling %s. Reframe this with light humor and playfulness, while
remaining supportive. Add a touch of wit to help them smile. Don't mock their
feelings. Keep it under 100 words and end on an encouraging note.`,

	"direct": `The user said: "%s"
They are feeling %s. Provide a straightforward, practical positive reframe.
Be clear and actionable. Focus on what they can control or do next. Keep it
under 80 words.`,

	"cbt": `The user said: "%s"
They are feeling %s. Using CBT principles, identify any cognitive distortion
(catastrophizing, black-and-white thinking, overgeneralization, etc.) and
provide a rational, evidence-based alternative perspective. Be gentle but
clear. Under 100 words.`,
}

// DefaultStyle is the reframing register used when none is configured.
const DefaultStyle = "gentle"

// Styles lists the available reframing registers.
func Styles() []string {
	return []string{"gentle", "humorous", "direct", "cbt"}
}
