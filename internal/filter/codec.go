package filter

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var languageCode = regexp.MustCompile(`^[a-z]{2}$`)

// Decode builds a State from query parameters. Missing or unrecognized values
// fall back to their defaults; it never fails.
func Decode(q url.Values) State {
	return State{
		Genre:    normalizeGenre(q.Get(string(FieldGenre))),
		Year:     normalizeYear(q.Get(string(FieldYear))),
		Rating:   normalizeRating(q.Get(string(FieldRating))),
		Language: normalizeLanguage(q.Get(string(FieldLanguage))),
		Sort:     normalizeSort(q.Get(string(FieldSort))),
		Query:    strings.TrimSpace(q.Get(string(FieldQuery))),
		Page:     parsePage(q.Get(string(FieldPage))),
	}
}

// DecodeString decodes a raw query string, with or without the leading "?".
// A malformed string decodes whatever pairs could be parsed.
func DecodeString(raw string) State {
	q, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return Decode(q)
}

// Encode writes the state as a query string without the leading "?".
// Defaults are omitted, except page which is always written.
func (s State) Encode() string {
	var b strings.Builder
	for _, f := range fieldOrder {
		v, ok := s.encoded(f)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(string(f)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String()
}

// Values returns the encoded state as url.Values.
func (s State) Values() url.Values {
	q := url.Values{}
	for _, f := range fieldOrder {
		if v, ok := s.encoded(f); ok {
			q.Set(string(f), v)
		}
	}
	return q
}

// String returns the location form, "?" + Encode().
func (s State) String() string {
	return "?" + s.Encode()
}

func (s State) encoded(f Field) (string, bool) {
	switch f {
	case FieldPage:
		page := s.Page
		if page < 1 {
			page = 1
		}
		return strconv.Itoa(page), true
	case FieldSort:
		if s.Sort == "" || s.Sort == DefaultSort {
			return "", false
		}
		return string(s.Sort), true
	}
	v := s.Get(f)
	if v == "" || v == All {
		return "", false
	}
	return v, true
}

func normalizeGenre(v string) string {
	v = strings.TrimSpace(v)
	id, err := strconv.Atoi(v)
	if err != nil || id < 1 {
		return All
	}
	return strconv.Itoa(id)
}

func normalizeYear(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if _, ok := yearRanges[v]; ok {
		return v
	}
	return All
}

func normalizeRating(v string) string {
	r, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || r < 1 || r > 9 {
		return All
	}
	return strconv.Itoa(r)
}

func normalizeLanguage(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if !languageCode.MatchString(v) {
		return All
	}
	return v
}

func normalizeSort(v string) SortKey {
	k := SortKey(strings.TrimSpace(v))
	if !k.Valid() {
		return DefaultSort
	}
	return k
}

func parsePage(v string) int {
	p, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || p < 1 {
		return 1
	}
	return p
}
