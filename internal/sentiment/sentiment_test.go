package sentiment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedScorer struct {
	score Score
	err   error
	block bool
}

func (f fixedScorer) Name() string { return "fixed" }

func (f fixedScorer) Score(ctx context.Context, _ string) (Score, error) {
	if f.block {
		<-ctx.Done()
		return Score{}, ctx.Err()
	}
	return f.score, f.err
}

func TestLabel(t *testing.T) {
	tests := []struct {
		polarity float64
		want     string
	}{
		{0.8, LabelPositive},
		{0.051, LabelPositive},
		{0.05, LabelNeutral},
		{0, LabelNeutral},
		{-0.05, LabelNeutral},
		{-0.051, LabelNegative},
		{-1, LabelNegative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.polarity), "polarity %v", tt.polarity)
	}
}

func TestSubjectivityLabel(t *testing.T) {
	assert.Equal(t, SubjectivityHigh, SubjectivityLabel(0.51))
	assert.Equal(t, SubjectivityLow, SubjectivityLabel(0.5))
	assert.Equal(t, SubjectivityLow, SubjectivityLabel(0))
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "😊", Emoji(LabelPositive))
	assert.Equal(t, "😟", Emoji(LabelNegative))
	assert.Equal(t, "😐", Emoji(LabelNeutral))
	assert.Equal(t, "😐", Emoji("unknown"))
}

func TestGateway_ClampsScores(t *testing.T) {
	gw := NewGateway(fixedScorer{score: Score{Polarity: 3, Subjectivity: -2}}, 0)

	s, err := gw.Score(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Polarity)
	assert.Equal(t, 0.0, s.Subjectivity)
	assert.Equal(t, "fixed", gw.Scorer())
}

func TestGateway_WrapsErrors(t *testing.T) {
	cause := errors.New("engine down")
	gw := NewGateway(fixedScorer{err: cause}, 0)

	_, err := gw.Score(context.Background(), "anything")
	require.Error(t, err)

	var serr *ScoringError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "fixed", serr.Scorer)
	assert.ErrorIs(t, err, cause)
}

func TestGateway_Timeout(t *testing.T) {
	gw := NewGateway(fixedScorer{block: true}, 20*time.Millisecond)

	_, err := gw.Score(context.Background(), "anything")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestVaderScorer(t *testing.T) {
	v := NewVaderScorer()
	ctx := context.Background()

	pos, err := v.Score(ctx, "I love this product. It is very good.")
	require.NoError(t, err)
	assert.Equal(t, LabelPositive, Label(pos.Polarity))
	assert.Greater(t, pos.Subjectivity, 0.0)

	neg, err := v.Score(ctx, "This is terrible and I hate it.")
	require.NoError(t, err)
	assert.Equal(t, LabelNegative, Label(neg.Polarity))

	blank, err := v.Score(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, Score{}, blank)

	for _, s := range []Score{pos, neg} {
		assert.GreaterOrEqual(t, s.Polarity, -1.0)
		assert.LessOrEqual(t, s.Polarity, 1.0)
		assert.GreaterOrEqual(t, s.Subjectivity, 0.0)
		assert.LessOrEqual(t, s.Subjectivity, 1.0)
	}
}

func TestVaderScorer_Deterministic(t *testing.T) {
	v := NewVaderScorer()
	a, err := v.Score(context.Background(), "The service was great")
	require.NoError(t, err)
	b, err := v.Score(context.Background(), "The service was great")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestVaderScorer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVaderScorer().Score(ctx, "good")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    Score
		wantErr bool
	}{
		{"plain", `{"polarity": 0.4, "subjectivity": 0.7}`, Score{0.4, 0.7}, false},
		{"fenced", "```json\n{\"polarity\": -0.2, \"subjectivity\": 0.1}\n```", Score{-0.2, 0.1}, false},
		{"not json", "pretty positive", Score{}, true},
		{"missing field", `{"polarity": 0.4}`, Score{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScore(tt.reply)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Polarity, got.Polarity, 1e-9)
			assert.InDelta(t, tt.want.Subjectivity, got.Subjectivity, 1e-9)
		})
	}
}

func TestOpenAIScorer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"{\"polarity\": 0.6, \"subjectivity\": 0.8}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	s, err := NewOpenAIScorer("test-key", "", srv.URL+"/v1").Score(context.Background(), "I love it")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, s.Polarity, 1e-9)
	assert.InDelta(t, 0.8, s.Subjectivity, 1e-9)
}

func TestOpenAIScorer_NoAPIKey(t *testing.T) {
	_, err := NewOpenAIScorer("", "", "").Score(context.Background(), "good")
	require.Error(t, err)
	assert.Equal(t, "OpenAI API key not found", err.Error())
}

func TestNewScorer(t *testing.T) {
	s, err := NewScorer(ScorerConfig{})
	require.NoError(t, err)
	assert.Equal(t, "vader", s.Name())

	s, err = NewScorer(ScorerConfig{Provider: "openai", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", s.Name())

	_, err = NewScorer(ScorerConfig{Provider: "textblob"})
	assert.Error(t, err)
}
