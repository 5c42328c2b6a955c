package emotion

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upliftbot/uplift/internal/llm"
)

// fakeClient counts calls so tests can verify the crisis short-circuit
// never reaches the classifier.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) Chat(ctx context.Context, system string, messages []llm.Message) (string, error) {
	f.calls++
	return f.response, f.err
}

func TestClassify_CrisisShortCircuit(t *testing.T) {
	client := &fakeClient{response: `{"primary_emotion": "sadness"}`}
	a := NewAnalyzer(client)

	result := a.Classify(context.Background(), "I want to end my life")

	assert.True(t, result.IsCrisis)
	assert.Equal(t, "crisis", result.PrimaryEmotion)
	assert.Equal(t, 1.0, result.Intensity)
	assert.Zero(t, client.calls, "classifier must not be called for crisis text")
}

func TestClassify_CrisisKeywordsCaseInsensitive(t *testing.T) {
	client := &fakeClient{}
	a := NewAnalyzer(client)

	for _, text := range []string{
		"I WANT TO DIE",
		"there is No Point Living anymore",
		"sometimes I think about suicide",
	} {
		result := a.Classify(context.Background(), text)
		assert.True(t, result.IsCrisis, "text %q", text)
	}
	assert.Zero(t, client.calls)
}

func TestClassify_ParsesPlainJSON(t *testing.T) {
	client := &fakeClient{response: `{"primary_emotion": "sadness", "intensity": 0.8, "secondary_emotions": ["loneliness"]}`}
	a := NewAnalyzer(client)

	result := a.Classify(context.Background(), "my dog died")

	assert.False(t, result.IsCrisis)
	assert.Equal(t, "sadness", result.PrimaryEmotion)
	assert.Equal(t, 0.8, result.Intensity)
	assert.Equal(t, []string{"loneliness"}, result.SecondaryEmotions)
	assert.Equal(t, 1, client.calls)
}

func TestClassify_ParsesFencedJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "json fence",
			response: "```json\n{\"primary_emotion\": \"anger\", \"intensity\": 0.6}\n```",
		},
		{
			name:     "bare fence",
			response: "```\n{\"primary_emotion\": \"anger\", \"intensity\": 0.6}\n```",
		},
		{
			name:     "surrounding prose",
			response: "Here is my analysis:\n{\"primary_emotion\": \"anger\", \"intensity\": 0.6}\nHope this helps!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(&fakeClient{response: tt.response})
			result := a.Classify(context.Background(), "this is so unfair")
			assert.Equal(t, "anger", result.PrimaryEmotion)
			assert.Equal(t, 0.6, result.Intensity)
		})
	}
}

func TestClassify_TransportFailureYieldsNeutral(t *testing.T) {
	a := NewAnalyzer(&fakeClient{err: fmt.Errorf("connection refused")})

	result := a.Classify(context.Background(), "whatever")

	assert.False(t, result.IsCrisis)
	assert.Equal(t, "neutral", result.PrimaryEmotion)
	assert.Equal(t, 0.5, result.Intensity)
	assert.Empty(t, result.SecondaryEmotions)
}

func TestClassify_GarbageResponseYieldsNeutral(t *testing.T) {
	for _, response := range []string{"", "I cannot classify that.", "{broken"} {
		a := NewAnalyzer(&fakeClient{response: response})
		result := a.Classify(context.Background(), "hm")
		assert.Equal(t, "neutral", result.PrimaryEmotion, "response %q", response)
	}
}

func TestClassify_MissingFieldsGetDefaults(t *testing.T) {
	a := NewAnalyzer(&fakeClient{response: `{"intensity": 0.9}`})

	result := a.Classify(context.Background(), "hm")

	assert.Equal(t, "neutral", result.PrimaryEmotion)
	assert.Equal(t, 0.9, result.Intensity)
	require.NotNil(t, result.SecondaryEmotions)
	assert.Empty(t, result.SecondaryEmotions)
}
