// Package urlsync converts view state to and from flat query parameters.
package urlsync

import "net/url"

// Query parameter keys.
const (
	KeyQuery    = "q"
	KeyTags     = "tags"
	KeyPriority = "priority"
	KeyStatus   = "status"
	KeyView     = "view"
	KeySort     = "sort"
	KeyDue      = "due"
)

// Keys returns every query parameter key in encoding order.
func Keys() []string {
	return []string{KeyQuery, KeyTags, KeyPriority, KeyStatus, KeyView, KeySort, KeyDue}
}

// QueryParams is the flat string form of a view state.
// A nil field means the parameter is absent.
type QueryParams struct {
	Q        *string
	Tags     *string
	Priority *string
	Status   *string
	View     *string
	Sort     *string
	Due      *string
}

func (p *QueryParams) field(key string) **string {
	switch key {
	case KeyQuery:
		return &p.Q
	case KeyTags:
		return &p.Tags
	case KeyPriority:
		return &p.Priority
	case KeyStatus:
		return &p.Status
	case KeyView:
		return &p.View
	case KeySort:
		return &p.Sort
	case KeyDue:
		return &p.Due
	}
	return nil
}

// ParseFromRecord reads the known keys of record. Unknown keys are ignored.
func ParseFromRecord(record map[string]string) QueryParams {
	var p QueryParams
	for _, key := range Keys() {
		if v, ok := record[key]; ok {
			*p.field(key) = &v
		}
	}
	return p
}

// ToRecord returns the non-empty parameters as a record.
func ToRecord(p QueryParams) map[string]string {
	record := make(map[string]string)
	for _, key := range Keys() {
		if v := *p.field(key); v != nil && *v != "" {
			record[key] = *v
		}
	}
	return record
}

// ParseQuery parses a URL query string such as "q=milk&sort=priority".
// A leading "?" is allowed. Only the first value of each key is used.
func ParseQuery(raw string) (QueryParams, error) {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return QueryParams{}, err
	}
	record := make(map[string]string, len(values))
	for key := range values {
		record[key] = values.Get(key)
	}
	return ParseFromRecord(record), nil
}

// String encodes the non-empty parameters as a URL query string with
// keys sorted.
func (p QueryParams) String() string {
	values := url.Values{}
	for key, v := range ToRecord(p) {
		values.Set(key, v)
	}
	return values.Encode()
}
