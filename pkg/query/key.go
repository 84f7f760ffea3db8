package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies one cached query: a resource name plus the id or filter
// params that distinguish it from sibling queries. Keys with the same string
// form share one cache entry and one in-flight request.
type Key struct {
	// Resource is the backend resource name (e.g. "customers", "orders").
	Resource string

	// ID is the record id for single-record queries ("" for lists).
	ID string

	// Params are the list filters (e.g. {"status": "PENDING"}).
	Params url.Values
}

// NewKey builds a list key for a resource.
func NewKey(resource string, params url.Values) Key {
	return Key{Resource: resource, Params: params}
}

// NewRecordKey builds a single-record key.
func NewRecordKey(resource, id string) Key {
	return Key{Resource: resource, ID: id}
}

// String generates a deterministic cache key string.
// Format: sd:resource:id=<id>:param1=val1:param2=val2
//
// Example:
//
//	sd:orders:status=PENDING
//	sd:customers:id=7f9c...
func (k Key) String() string {
	parts := []string{"sd", k.Resource}

	if k.ID != "" {
		parts = append(parts, "id="+k.ID)
	}

	if len(k.Params) > 0 {
		paramKeys := make([]string, 0, len(k.Params))
		for key := range k.Params {
			paramKeys = append(paramKeys, key)
		}
		sort.Strings(paramKeys)

		for _, key := range paramKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Params.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}

// resourcePrefix is the string-form prefix shared by every key of a
// resource. Used by InvalidateResource.
func resourcePrefix(resource string) string {
	return "sd:" + resource
}

// matchesResource reports whether a stringified key belongs to a resource.
func matchesResource(keyStr, resource string) bool {
	prefix := resourcePrefix(resource)
	return keyStr == prefix || strings.HasPrefix(keyStr, prefix+":")
}
