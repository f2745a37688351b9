package model

import "time"

// Sentiment is the derived community read on a news item.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// Votes carries the community vote counts attached to a news item.
type Votes struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// NewsItem is the normalized projection of one upstream news post.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PublishedAt string    `json:"published_at"`
	Source      string    `json:"source"`
	Currencies  []string  `json:"currencies"`
	Sentiment   Sentiment `json:"sentiment"`
	Votes       Votes     `json:"votes"`
}

// Batch is one cached fetch result: the items plus the moment they were
// fetched. Freshness is judged against FetchedAt, never against item dates.
type Batch struct {
	Items     []NewsItem `json:"items"`
	FetchedAt time.Time  `json:"fetchedAt"`
}

// Fresh reports whether the batch is still within ttl of its fetch time.
func (b *Batch) Fresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(b.FetchedAt) <= ttl
}

// ClassifySentiment derives a sentiment from vote counts. A side needs a
// strict majority and at least three votes to move the needle off neutral.
func ClassifySentiment(v Votes) Sentiment {
	if v.Positive > v.Negative && v.Positive >= 3 {
		return SentimentBullish
	}
	if v.Negative > v.Positive && v.Negative >= 3 {
		return SentimentBearish
	}
	return SentimentNeutral
}
