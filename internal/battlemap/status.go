package battlemap

import (
	"fmt"
	"strconv"
)

// MapPointStatus describes what occupies a grid cell of a template.
//
// The text code of a status is its numeric code written as a single decimal
// digit ('0'..'5'); the same character is used by Encode and Parse.
type MapPointStatus int

const (
	// StatusUnavailable marks terrain that is not part of the map.
	StatusUnavailable MapPointStatus = iota
	StatusEmpty
	StatusPlayer
	StatusChest
	StatusMonster
	StatusFieldBoss
)

var statusNames = [...]string{
	StatusUnavailable: "unavailable",
	StatusEmpty:       "empty",
	StatusPlayer:      "player",
	StatusChest:       "chest",
	StatusMonster:     "monster",
	StatusFieldBoss:   "field_boss",
}

// Code returns the numeric code of the status.
func (s MapPointStatus) Code() int {
	return int(s)
}

// Char returns the single-character text code used in template rows.
func (s MapPointStatus) Char() byte {
	return '0' + byte(s)
}

// IsMapPoint reports whether the cell belongs to the playable grid (code > 0).
func (s MapPointStatus) IsMapPoint() bool {
	return s > StatusUnavailable && s.Valid()
}

// Valid reports whether s is a known status.
func (s MapPointStatus) Valid() bool {
	return s >= 0 && int(s) < len(statusNames)
}

// Resource returns the resource kind sharing the status code, if any.
func (s MapPointStatus) Resource() (MapPointResource, bool) {
	r := MapPointResource(s)
	return r, r.Valid()
}

func (s MapPointStatus) String() string {
	if !s.Valid() {
		return "MapPointStatus(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// ParseMapPointStatus casts raw text to a status. raw may be the numeric code
// or the character code.
func ParseMapPointStatus(raw string) (MapPointStatus, error) {
	if len(raw) == 1 {
		if s, ok := statusFromChar(raw[0]); ok {
			return s, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatusCode, raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n >= len(statusNames) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatusCode, raw)
	}
	return MapPointStatus(n), nil
}

func statusFromChar(c byte) (MapPointStatus, bool) {
	if c < '0' || int(c-'0') >= len(statusNames) {
		return 0, false
	}
	return MapPointStatus(c - '0'), true
}
