package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"github.com/misterclayt0n/forja/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	oneHour        = 60 * 60
	exerciseExpire = oneHour * 24
	quoteExpire    = oneHour

	defaultTimeout = 5 * time.Second
	megabyte       = 1024 * 1024
)

var errDisabled = errors.New("remote lookups disabled")

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

var fallbackQuotes = []Quote{
	{Content: "The only bad workout is the one that didn't happen.", Author: "Unknown"},
	{Content: "Success isn't given. It's earned.", Author: "Unknown"},
	{Content: "Your body can stand almost anything. It's your mind that you have to convince.", Author: "Unknown"},
}

var fallbackExercises = []models.CatalogExercise{
	{Name: "Bench Press", Muscle: "chest", Type: "strength", Difficulty: models.DifficultyIntermediate},
	{Name: "Push-ups", Muscle: "chest", Type: "strength", Difficulty: models.DifficultyBeginner},
	{Name: "Dumbbell Flyes", Muscle: "chest", Type: "strength", Difficulty: models.DifficultyIntermediate},
}

// CacheStore keeps responses between runs, so the expiry holds across
// separate processes.
type CacheStore interface {
	LoadCachedResponse(key string) ([]byte, time.Time, error)
	SaveCachedResponse(key string, data []byte, fetchedAt time.Time) error
}

type Params struct {
	ExerciseAPIURL string
	ExerciseAPIKey string
	QuoteAPIURL    string
	Timeout        time.Duration
	CacheMegabytes int
	// HTTPClient overrides the default client; Timeout is ignored then.
	HTTPClient *http.Client
	// Store backs the in-process cache. Optional.
	Store CacheStore
	Now   func() time.Time
	Log   *logrus.Entry
}

// Client looks up exercises and motivational quotes over HTTP. Every lookup
// degrades to a built-in list when the API is unset, slow or broken.
type Client struct {
	cache          *freecache.Cache
	persist        CacheStore
	now            func() time.Time
	exerciseAPIURL string
	exerciseAPIKey string
	quoteAPIURL    string
	httpClient     *http.Client
	log            *logrus.Entry
}

func NewClient(p Params) *Client {
	cacheSize := p.CacheMegabytes * megabyte
	if cacheSize <= 0 {
		cacheSize = megabyte
	}

	httpClient := p.HTTPClient
	if httpClient == nil {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log := p.Log
	if log == nil {
		log = logrus.WithField("component", "remote")
	}

	now := p.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		cache:          freecache.NewCache(cacheSize),
		persist:        p.Store,
		now:            now,
		exerciseAPIURL: strings.TrimSpace(p.ExerciseAPIURL),
		exerciseAPIKey: p.ExerciseAPIKey,
		quoteAPIURL:    strings.TrimSpace(p.QuoteAPIURL),
		httpClient:     httpClient,
		log:            log,
	}
}

// Exercises returns the API's exercises for muscle. live is false when the
// fallback list was returned instead.
func (c *Client) Exercises(ctx context.Context, muscle string) (exercises []models.CatalogExercise, live bool) {
	muscle = strings.ToLower(strings.TrimSpace(muscle))

	exercises, err := c.fetchExercises(ctx, muscle)
	if err != nil {
		if !errors.Is(err, errDisabled) {
			c.log.WithError(err).Warnf("exercise lookup for %q failed, using fallback", muscle)
		}
		return append([]models.CatalogExercise(nil), fallbackExercises...), false
	}
	return exercises, true
}

func (c *Client) fetchExercises(ctx context.Context, muscle string) ([]models.CatalogExercise, error) {
	if c.exerciseAPIURL == "" {
		return nil, errDisabled
	}

	var exercises []models.CatalogExercise
	cacheKey := "exercises::" + muscle
	if c.cached(cacheKey, exerciseExpire, &exercises) {
		c.log.Tracef("exercises for %q found in cache", muscle)
		return exercises, nil
	}

	u, err := url.Parse(c.exerciseAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid exercise api url: %w", err)
	}
	if muscle != "" && muscle != models.MuscleAll {
		q := u.Query()
		q.Set("muscle", muscle)
		u.RawQuery = q.Encode()
	}

	body, err := c.get(ctx, u.String(), map[string]string{"X-Api-Key": c.exerciseAPIKey})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exercise api response: %w", err)
	}

	for i := range exercises {
		if exercises[i].Muscle == "" {
			exercises[i].Muscle = muscle
		}
	}

	c.store(cacheKey, exercises, exerciseExpire)
	return exercises, nil
}

// Quote returns a motivational quote. live is false for the built-in ones.
func (c *Client) Quote(ctx context.Context) (quote Quote, live bool) {
	quote, err := c.fetchQuote(ctx)
	if err != nil {
		if !errors.Is(err, errDisabled) {
			c.log.WithError(err).Warn("quote lookup failed, using fallback")
		}
		return fallbackQuotes[rand.IntN(len(fallbackQuotes))], false
	}
	return quote, true
}

func (c *Client) fetchQuote(ctx context.Context) (Quote, error) {
	if c.quoteAPIURL == "" {
		return Quote{}, errDisabled
	}

	var quote Quote
	if c.cached("quote", quoteExpire, &quote) {
		return quote, nil
	}

	body, err := c.get(ctx, c.quoteAPIURL, nil)
	if err != nil {
		return Quote{}, err
	}
	quote, err = decodeQuote(body)
	if err != nil {
		return Quote{}, err
	}

	c.store("quote", quote, quoteExpire)
	return quote, nil
}

// decodeQuote accepts both a single quote object and an array of them.
func decodeQuote(body []byte) (Quote, error) {
	body = bytes.TrimSpace(body)

	var quote Quote
	if len(body) > 0 && body[0] == '[' {
		var quotes []Quote
		if err := json.Unmarshal(body, &quotes); err != nil {
			return Quote{}, fmt.Errorf("failed to unmarshal quote api response: %w", err)
		}
		if len(quotes) == 0 {
			return Quote{}, errors.New("quote api returned no quotes")
		}
		quote = quotes[0]
	} else if err := json.Unmarshal(body, &quote); err != nil {
		return Quote{}, fmt.Errorf("failed to unmarshal quote api response: %w", err)
	}

	if strings.TrimSpace(quote.Content) == "" {
		return Quote{}, errors.New("quote api returned an empty quote")
	}
	if quote.Author == "" {
		quote.Author = "Unknown"
	}
	return quote, nil
}

func (c *Client) get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	c.log.Debugf("calling %s", req.URL.Redacted())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response bytes: %w", err)
	}
	return body, nil
}

// cached decodes key into v from the in-process cache or, failing that, from
// the store while it is younger than maxAge seconds.
func (c *Client) cached(key string, maxAge int, v any) bool {
	if data, err := c.cache.Get([]byte(key)); err == nil {
		if err := json.Unmarshal(data, v); err == nil {
			return true
		}
		c.cache.Del([]byte(key))
	}

	if c.persist == nil {
		return false
	}
	data, fetchedAt, err := c.persist.LoadCachedResponse(key)
	if err != nil {
		c.log.WithError(err).Tracef("%s not in the store", key)
		return false
	}
	left := maxAge - int(c.now().Sub(fetchedAt)/time.Second)
	if left <= 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	if err := c.cache.Set([]byte(key), data, left); err != nil {
		c.log.WithError(err).Errorf("failed to cache %s", key)
	}
	return true
}

func (c *Client) store(key string, v any, expireSeconds int) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set([]byte(key), data, expireSeconds); err != nil {
		c.log.WithError(err).Errorf("failed to cache %s", key)
	}
	if c.persist == nil {
		return
	}
	if err := c.persist.SaveCachedResponse(key, data, c.now()); err != nil {
		c.log.WithError(err).Warnf("failed to store %s", key)
	}
}
