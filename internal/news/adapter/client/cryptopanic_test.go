package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubsite/internal/news/config"
	"clubsite/internal/news/domain/model"
	"clubsite/internal/news/domain/repository"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL, token string) *config.Config {
	return &config.Config{
		CryptoPanicToken:   token,
		CryptoPanicBaseURL: baseURL,
		DefaultKind:        "news",
		DefaultFilter:      "hot",
		DefaultCurrencies:  "BTC,ETH,SOL",
		DefaultRegions:     "en",
	}
}

func TestFetch_NormalizesPosts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"id":101,"title":"BTC breaks range","published_at":"2026-08-28T10:00:00Z",
			 "source":{"title":"CoinDesk"},
			 "instruments":[{"code":"BTC"},{"code":"ETH"}],
			 "votes":{"positive":5,"negative":1}},
			{"id":102,"title":"","source":{},
			 "currencies":[{"code":"SOL"}],
			 "votes":{"positive":1,"negative":4}}
		]}`))
	}))
	defer upstream.Close()

	c := NewCryptoPanicClient(testConfig(upstream.URL, "test-token"), logger.NewLogger())
	items, err := c.Fetch(context.Background(), repository.FetchParams{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "101", items[0].ID)
	assert.Equal(t, "BTC breaks range", items[0].Title)
	assert.Equal(t, "CoinDesk", items[0].Source)
	assert.Equal(t, []string{"BTC", "ETH"}, items[0].Currencies)
	assert.Equal(t, model.SentimentBullish, items[0].Sentiment)

	assert.Equal(t, "UNTITLED", items[1].Title)
	assert.Equal(t, "UNKNOWN", items[1].Source)
	assert.Equal(t, []string{"SOL"}, items[1].Currencies)
	assert.Equal(t, model.SentimentBearish, items[1].Sentiment)
}

func TestFetch_MissingTokenFailsBeforeNetwork(t *testing.T) {
	c := NewCryptoPanicClient(testConfig("http://127.0.0.1:1", ""), logger.NewLogger())
	items, err := c.Fetch(context.Background(), repository.FetchParams{})
	assert.Nil(t, items)
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestFetch_ErrorStatusCarriesCode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	c := NewCryptoPanicClient(testConfig(upstream.URL, "test-token"), logger.NewLogger())
	_, err := c.Fetch(context.Background(), repository.FetchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_STATUS_429")
}

func TestBuildPostsURL_InjectsTokenAndDefaults(t *testing.T) {
	c := NewCryptoPanicClient(testConfig("https://example.test/api/developer/v2", "secret"), logger.NewLogger())

	u := c.BuildPostsURL(repository.FetchParams{Currencies: "DOGE"})
	assert.Contains(t, u, "auth_token=secret")
	assert.Contains(t, u, "public=true")
	assert.Contains(t, u, "kind=news")
	assert.Contains(t, u, "filter=hot")
	assert.Contains(t, u, "currencies=DOGE")
	assert.Contains(t, u, "regions=en")
}
