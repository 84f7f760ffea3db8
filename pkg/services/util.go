package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func i64toa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// fetchAbsolute issues a GET for an absolute URL returned in a pagination
// next link, routing it back through the adapter so the token and error
// handling still apply. The URL must live under the configured base.
func fetchAbsolute(ctx context.Context, c *client.Client, absolute string) ([]byte, error) {
	base := c.BaseURL()
	if !strings.HasPrefix(absolute, base) {
		u, err := url.Parse(absolute)
		if err != nil {
			return nil, fmt.Errorf("parse next link: %w", err)
		}
		b, err := url.Parse(base)
		if err != nil || u.Host != b.Host {
			return nil, fmt.Errorf("next link %q outside API base", absolute)
		}
		absolute = base + strings.TrimPrefix(u.RequestURI(), b.Path)
	}

	rest := strings.TrimPrefix(absolute, base)
	path := rest
	var query url.Values
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		path = rest[:i]
		q, err := url.ParseQuery(rest[i+1:])
		if err != nil {
			return nil, fmt.Errorf("parse next link query: %w", err)
		}
		query = q
	}

	return c.DoRaw(ctx, http.MethodGet, path, query, nil)
}
