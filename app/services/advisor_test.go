package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictKnownCrop(t *testing.T) {
	svc := NewAdvisor()

	p, err := svc.Predict(context.Background(), "Tomatoes", "Maharashtra", "Premium")
	require.NoError(t, err)

	// 45 base * 1.10 location * 1.30 quality
	assert.Equal(t, 64.35, p.CurrentPrice)
	// current * 1.2 trend
	assert.Equal(t, 77.22, p.PredictedPrice)
	assert.Equal(t, "rising", p.Trend)
	assert.Equal(t, 0.85, p.Confidence)
	assert.Equal(t, "INR/kg", p.Unit)
	assert.NotEmpty(t, p.Recommendation)
}

func TestPredictUnknownCropUsesDefaults(t *testing.T) {
	svc := NewAdvisor()

	p, err := svc.Predict(context.Background(), "dragonfruit", "nowhere", "")
	require.NoError(t, err)
	assert.Equal(t, 30.0, p.CurrentPrice)
	assert.Equal(t, 30.0, p.PredictedPrice)
	assert.Equal(t, "stable", p.Trend)
}

func TestPredictIsDeterministic(t *testing.T) {
	svc := NewAdvisor()
	ctx := context.Background()

	a, err := svc.Predict(ctx, "onions", "punjab", "grade a")
	require.NoError(t, err)
	b, err := svc.Predict(ctx, "onions", "punjab", "grade a")
	require.NoError(t, err)

	assert.Equal(t, a.CurrentPrice, b.CurrentPrice)
	assert.Equal(t, a.PredictedPrice, b.PredictedPrice)
}

func TestChatIntents(t *testing.T) {
	svc := NewAdvisor()
	ctx := context.Background()

	cases := map[string]string{
		"Hello there":                      "greeting",
		"namaste ji":                       "greeting",
		"what is the price of tomatoes":    "pricing",
		"is there demand for organic food": "market",
		"how do I grow better carrots":     "general",
	}
	for message, intent := range cases {
		reply, err := svc.Reply(ctx, message)
		require.NoError(t, err)
		assert.Equal(t, intent, reply.Intent, "message: %s", message)
		assert.NotEmpty(t, reply.Reply)
		assert.Len(t, reply.Suggestions, 3, "every turn carries three follow-up prompts")
	}
}

func TestTrendLabels(t *testing.T) {
	assert.Equal(t, "rising", trendLabel(1.2))
	assert.Equal(t, "stable", trendLabel(1.0))
	assert.Equal(t, "falling", trendLabel(0.9))
}
