// Package pagination normalizes the backend's list responses. Most list
// endpoints wrap their payload in a count/next/previous/results envelope;
// a few return bare arrays. Services decode both through Normalize so pages
// always receive a plain ordered sequence.
package pagination

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Envelope is the pagination wrapper used by enveloped list endpoints.
type Envelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Normalize decodes a list payload into a plain sequence:
//
//   - paginated envelope: the envelope's results
//   - bare array: the array unchanged
//   - anything else: an empty sequence
func Normalize[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	if trimmed[0] == '{' {
		var env Envelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode list envelope: %w", err)
		}
		if env.Results == nil {
			return []T{}, nil
		}
		return env.Results, nil
	}

	return []T{}, nil
}

// maxPages bounds next-link walks against a backend bug producing a cycle.
const maxPages = 1000

// FetchAll walks an enveloped endpoint's next links and returns the
// concatenated results. fetch is called with "" for the first page and with
// each envelope's next URL afterwards. A bare-array response ends the walk.
func FetchAll[T any](ctx context.Context, fetch func(ctx context.Context, next string) ([]byte, error)) ([]T, error) {
	var all []T
	next := ""

	for page := 1; page <= maxPages; page++ {
		data, err := fetch(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			items, err := Normalize[T](data)
			if err != nil {
				return nil, err
			}
			return append(all, items...), nil
		}

		var env Envelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode page %d: %w", page, err)
		}
		all = append(all, env.Results...)

		if env.Next == nil || *env.Next == "" {
			return all, nil
		}
		next = *env.Next

		log.Debug().
			Int("page", page).
			Int("fetched", len(all)).
			Int("total", env.Count).
			Msg("Following pagination next link")
	}

	return nil, fmt.Errorf("pagination: exceeded %d pages", maxPages)
}
