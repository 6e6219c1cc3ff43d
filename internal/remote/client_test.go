package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/misterclayt0n/forja/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Exercises(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "biceps", r.URL.Query().Get("muscle"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[
			{"name": "Incline Hammer Curls", "type": "strength", "muscle": "biceps", "equipment": "dumbbell", "difficulty": "beginner"},
			{"name": "Wide-grip barbell curl", "type": "strength", "difficulty": "beginner"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(Params{ExerciseAPIURL: srv.URL + "/v1/exercises?limit=50", ExerciseAPIKey: "secret"})

	exercises, live := c.Exercises(context.Background(), "Biceps")
	require.True(t, live)
	require.Len(t, exercises, 2)
	assert.Equal(t, models.CatalogExercise{
		Name: "Incline Hammer Curls", Muscle: "biceps", Type: "strength", Difficulty: "beginner",
	}, exercises[0])
	assert.Equal(t, "biceps", exercises[1].Muscle)

	// Second lookup is served from the cache.
	again, live := c.Exercises(context.Background(), "biceps")
	assert.True(t, live)
	assert.Equal(t, exercises, again)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_ExercisesFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "server error", handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{name: "unauthorized", handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{name: "garbage", handler: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": "nope"`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(Params{ExerciseAPIURL: srv.URL})
			exercises, live := c.Exercises(context.Background(), "chest")
			assert.False(t, live)
			assert.Equal(t, fallbackExercises, exercises)
		})
	}
}

func TestClient_ExercisesTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(Params{ExerciseAPIURL: srv.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, live := c.Exercises(context.Background(), "legs")
	assert.False(t, live)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestClient_Disabled(t *testing.T) {
	c := NewClient(Params{})

	exercises, live := c.Exercises(context.Background(), "chest")
	assert.False(t, live)
	assert.Len(t, exercises, 3)

	// Fallback slices are copies.
	exercises[0].Name = "Changed"
	assert.Equal(t, "Bench Press", fallbackExercises[0].Name)

	quote, live := c.Quote(context.Background())
	assert.False(t, live)
	assert.Contains(t, fallbackQuotes, quote)
}

func TestClient_Quote(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Quote
		live bool
	}{
		{
			name: "array",
			body: `[{"content": "Stay hard.", "author": "David Goggins"}]`,
			want: Quote{Content: "Stay hard.", Author: "David Goggins"},
			live: true,
		},
		{
			name: "object",
			body: `{"content": "Light weight!", "author": "Ronnie Coleman", "tags": ["motivational"]}`,
			want: Quote{Content: "Light weight!", Author: "Ronnie Coleman"},
			live: true,
		},
		{
			name: "no author",
			body: `{"content": "Just lift."}`,
			want: Quote{Content: "Just lift.", Author: "Unknown"},
			live: true,
		},
		{name: "empty array", body: `[]`},
		{name: "empty content", body: `{"author": "Nobody"}`},
		{name: "not json", body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Params{QuoteAPIURL: srv.URL})
			quote, live := c.Quote(context.Background())
			assert.Equal(t, tt.live, live)
			if tt.live {
				assert.Equal(t, tt.want, quote)
			} else {
				assert.Contains(t, fallbackQuotes, quote)
			}
		})
	}
}

func TestClient_QuoteCached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"content": "Again.", "author": "Coach"}`))
	}))
	defer srv.Close()

	c := NewClient(Params{QuoteAPIURL: srv.URL})
	for i := 0; i < 3; i++ {
		quote, live := c.Quote(context.Background())
		require.True(t, live)
		assert.Equal(t, "Again.", quote.Content)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_CacheSharedThroughStore(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/quote" {
			_, _ = w.Write([]byte(`{"content": "Once.", "author": "Coach"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"name": "Hammer Curls", "muscle": "biceps"}]`))
	}))
	defer srv.Close()

	repo := storage.NewRepo(storage.NewMemoryStore(0), nil)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	newClient := func() *Client {
		return NewClient(Params{
			ExerciseAPIURL: srv.URL + "/exercises",
			QuoteAPIURL:    srv.URL + "/quote",
			Store:          repo,
			Now:            func() time.Time { return now },
		})
	}

	quote, live := newClient().Quote(context.Background())
	require.True(t, live)
	assert.Equal(t, "Once.", quote.Content)
	_, live = newClient().Exercises(context.Background(), "biceps")
	require.True(t, live)
	require.Equal(t, int32(2), hits.Load())

	// A later process finds both responses in the store.
	now = now.Add(30 * time.Minute)
	quote, live = newClient().Quote(context.Background())
	require.True(t, live)
	assert.Equal(t, "Once.", quote.Content)
	exercises, live := newClient().Exercises(context.Background(), "biceps")
	require.True(t, live)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Hammer Curls", exercises[0].Name)
	assert.Equal(t, int32(2), hits.Load())

	data, fetchedAt, err := repo.LoadCachedResponse("quote")
	require.NoError(t, err)
	assert.JSONEq(t, `{"content": "Once.", "author": "Coach"}`, string(data))
	assert.True(t, fetchedAt.Equal(now.Add(-30*time.Minute)))

	// The quote expires after an hour, the exercise list after a day.
	now = now.Add(time.Hour)
	_, live = newClient().Quote(context.Background())
	require.True(t, live)
	assert.Equal(t, int32(3), hits.Load())
	_, live = newClient().Exercises(context.Background(), "biceps")
	require.True(t, live)
	assert.Equal(t, int32(3), hits.Load())
}
