package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ImageList is an ordered set of image URLs persisted as a single
// comma-joined TEXT column. The encoding predates this service and is kept
// for compatibility with existing rows, so element URLs must never contain
// a comma; Validate enforces that before any write.
type ImageList []string

// Validate rejects lists whose elements would not survive the encode/decode
// round trip.
func (l ImageList) Validate() error {
	for _, u := range l {
		if strings.Contains(u, ",") {
			return fmt.Errorf("%w: %q", ErrInvalidImageURL, u)
		}
	}
	return nil
}

// Value implements driver.Valuer, encoding the list as a comma-joined string.
func (l ImageList) Value() (driver.Value, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return strings.Join(l, ","), nil
}

// Scan implements sql.Scanner, decoding a comma-joined string. An empty or
// NULL column scans to an empty list, not a single empty element.
func (l *ImageList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		*l = decodeImageList(v)
		return nil
	case []byte:
		*l = decodeImageList(string(v))
		return nil
	default:
		return fmt.Errorf("ImageList.Scan: unsupported source type %T", src)
	}
}

func decodeImageList(s string) ImageList {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(ImageList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Without returns a copy of the list with every element present in removed
// filtered out, preserving the order of the survivors.
func (l ImageList) Without(removed []string) ImageList {
	if len(removed) == 0 {
		return l
	}
	drop := make(map[string]bool, len(removed))
	for _, u := range removed {
		drop[u] = true
	}
	var out ImageList
	for _, u := range l {
		if !drop[u] {
			out = append(out, u)
		}
	}
	return out
}
