package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
)

type dump struct {
	ExportedAt time.Time         `toml:"exported_at"`
	Entries    map[string]string `toml:"entries"`
}

// Export writes every key of kv into a single TOML document.
func Export(kv KV, w io.Writer) (int, error) {
	keys, err := kv.Keys()
	if err != nil {
		return 0, fmt.Errorf("listing keys: %w", err)
	}

	d := dump{
		ExportedAt: time.Now().UTC(),
		Entries:    make(map[string]string, len(keys)),
	}
	for _, k := range keys {
		v, err := kv.Get(k)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", k, err)
		}
		d.Entries[k] = v
	}

	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return 0, fmt.Errorf("encoding TOML: %w", err)
	}
	return len(d.Entries), nil
}

// Import rebuilds kv from an Export dump: keys missing from the dump are
// removed, everything in it is written.
func Import(kv KV, r io.Reader) (int, error) {
	var d dump
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return 0, fmt.Errorf("decoding TOML: %w", err)
	}

	keys, err := kv.Keys()
	if err != nil {
		return 0, fmt.Errorf("listing keys: %w", err)
	}
	for _, k := range keys {
		if _, ok := d.Entries[k]; ok {
			continue
		}
		if err := kv.Remove(k); err != nil {
			return 0, fmt.Errorf("clearing %s: %w", k, err)
		}
	}

	for k, v := range d.Entries {
		if err := kv.Set(k, v); err != nil {
			return 0, fmt.Errorf("writing %s: %w", k, err)
		}
	}
	return len(d.Entries), nil
}
