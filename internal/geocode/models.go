package geocode

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// GeoPoint is a WGS84 position. Either coordinate may be missing.
type GeoPoint struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Point builds a resolved GeoPoint.
func Point(lat, lon float64) GeoPoint {
	return GeoPoint{Lat: &lat, Lon: &lon}
}

// Resolved reports whether both coordinates are present.
func (p GeoPoint) Resolved() bool {
	return p.Lat != nil && p.Lon != nil
}

// Tree is a read-only view over an arbitrary JSON value. Lookups on a
// missing or non-object node yield an empty Tree rather than failing, so
// chains like t.Get("council").Get("county") are always safe.
type Tree struct {
	v any
}

// ParseTree decodes raw JSON into a Tree. Numbers keep their literal text.
func ParseTree(raw []byte) (Tree, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Tree{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Tree{}, err
	}
	return Tree{v: v}, nil
}

// Get returns the child under key, or an empty Tree.
func (t Tree) Get(key string) Tree {
	m, ok := t.v.(map[string]any)
	if !ok {
		return Tree{}
	}
	return Tree{v: m[key]}
}

// Exists reports whether the node holds a non-null value.
func (t Tree) Exists() bool {
	return t.v != nil
}

// Text renders a string or number leaf. Objects, arrays, booleans and
// missing nodes yield ("", false).
func (t Tree) Text() (string, bool) {
	switch v := t.v.(type) {
	case string:
		return v, v != ""
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// IsObject reports whether the node is a JSON object.
func (t Tree) IsObject() bool {
	_, ok := t.v.(map[string]any)
	return ok
}

// Result is one successful provider lookup.
type Result struct {
	Point     GeoPoint
	Shortcuts Tree
	Areas     Tree

	raw []byte
}

// HasCoordinates reports whether the provider returned both lat and lon.
func (r *Result) HasCoordinates() bool {
	return r != nil && r.Point.Resolved()
}

// LocalAuthority resolves the council display name. The council identifier
// is read from shortcuts.council.county, falling back to a flat
// shortcuts.council value; the name is then areas[id].name. Any missing step
// yields ("", false).
func (r *Result) LocalAuthority() (string, bool) {
	if r == nil {
		return "", false
	}
	council := r.Shortcuts.Get("council")

	id, ok := council.Get("county").Text()
	if !ok {
		id, ok = council.Text()
	}
	if !ok {
		return "", false
	}
	return r.Areas.Get(id).Get("name").Text()
}

// Raw returns the provider payload the result was decoded from.
func (r *Result) Raw() []byte {
	return r.raw
}

type wireResult struct {
	Lat       *float64        `json:"wgs84_lat"`
	Lon       *float64        `json:"wgs84_lon"`
	Shortcuts json.RawMessage `json:"shortcuts"`
	Areas     json.RawMessage `json:"areas"`
}

// Decode parses a MapIt-shaped payload.
func Decode(raw []byte) (*Result, error) {
	var w wireResult
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	shortcuts, err := ParseTree(w.Shortcuts)
	if err != nil {
		return nil, err
	}
	areas, err := ParseTree(w.Areas)
	if err != nil {
		return nil, err
	}
	return &Result{
		Point:     GeoPoint{Lat: w.Lat, Lon: w.Lon},
		Shortcuts: shortcuts,
		Areas:     areas,
		raw:       raw,
	}, nil
}
