package model_test

import (
	"testing"
	"time"

	"clubsite/internal/news/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		name     string
		votes    model.Votes
		expected model.Sentiment
	}{
		{"clear positive majority", model.Votes{Positive: 5, Negative: 1}, model.SentimentBullish},
		{"clear negative majority", model.Votes{Positive: 1, Negative: 5}, model.SentimentBearish},
		{"tie stays neutral", model.Votes{Positive: 2, Negative: 2}, model.SentimentNeutral},
		{"tie above threshold stays neutral", model.Votes{Positive: 3, Negative: 3}, model.SentimentNeutral},
		{"threshold exactly met", model.Votes{Positive: 3, Negative: 0}, model.SentimentBullish},
		{"majority below threshold", model.Votes{Positive: 2, Negative: 0}, model.SentimentNeutral},
		{"no votes", model.Votes{}, model.SentimentNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, model.ClassifySentiment(tc.votes))
		})
	}
}

func TestBatchFresh(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 12 * time.Hour

	fresh := &model.Batch{FetchedAt: now.Add(-1 * time.Hour)}
	assert.True(t, fresh.Fresh(ttl, now))

	boundary := &model.Batch{FetchedAt: now.Add(-12 * time.Hour)}
	assert.True(t, boundary.Fresh(ttl, now))

	expired := &model.Batch{FetchedAt: now.Add(-13 * time.Hour)}
	assert.False(t, expired.Fresh(ttl, now))
}
