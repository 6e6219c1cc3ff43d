package storage

import (
	"encoding/json"
	"time"
)

const keyAPICachePrefix = "apiCache::"

type cachedResponse struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// LoadCachedResponse returns a cached remote response and when it was fetched.
func (r *Repo) LoadCachedResponse(key string) ([]byte, time.Time, error) {
	var c cachedResponse
	if err := r.getJSON(keyAPICachePrefix+key, &c); err != nil {
		return nil, time.Time{}, err
	}
	return c.Data, c.FetchedAt, nil
}

func (r *Repo) SaveCachedResponse(key string, data []byte, fetchedAt time.Time) error {
	return r.putJSON(keyAPICachePrefix+key, cachedResponse{Data: data, FetchedAt: fetchedAt})
}
