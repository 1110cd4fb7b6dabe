// Package geo implements great-circle distance and radius search.
package geo

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// DefaultRadiusKm applies when a search does not name a radius.
const DefaultRadiusKm = 10.0

var ErrInvalidLocation = errors.New("invalid location parameters")

type Point struct {
	Lat float64
	Lng float64
}

// PointOf builds a Point from optional coordinates. ok is false unless both are set.
func PointOf(lat, lng *float64) (Point, bool) {
	if lat == nil || lng == nil {
		return Point{}, false
	}
	return Point{Lat: *lat, Lng: *lng}, true
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Point) float64 {
	lat1, lng1 := radians(a.Lat), radians(a.Lng)
	lat2, lng2 := radians(b.Lat), radians(b.Lng)

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	// Rounding can push h a hair over 1 for antipodal points.
	h = math.Min(1, h)
	return 2 * math.Asin(math.Sqrt(h)) * EarthRadiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Ranked pairs an item with its distance from the search origin.
type Ranked[T any] struct {
	Item     T
	Distance float64
}

// Nearby keeps the items within radiusKm of origin, closest first.
// Items for which locate returns false are skipped. Distances are rounded
// to two decimals; ties keep their input order.
func Nearby[T any](origin Point, items []T, locate func(T) (Point, bool), radiusKm float64) []Ranked[T] {
	out := make([]Ranked[T], 0, len(items))
	for _, it := range items {
		p, ok := locate(it)
		if !ok {
			continue
		}
		d := Haversine(origin, p)
		if d > radiusKm {
			continue
		}
		out = append(out, Ranked[T]{Item: it, Distance: d})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	for i := range out {
		out[i].Distance = math.Round(out[i].Distance*100) / 100
	}
	return out
}

// Query is a parsed proximity search.
type Query struct {
	Origin   Point
	RadiusKm float64
}

// ParseQuery reads lat, lng and radius as sent on the query string.
// Empty values take the defaults 0, 0 and DefaultRadiusKm.
func ParseQuery(lat, lng, radius string) (Query, error) {
	q := Query{RadiusKm: DefaultRadiusKm}

	var err error
	if q.Origin.Lat, err = parseFloat(lat, 0); err != nil {
		return Query{}, err
	}
	if q.Origin.Lng, err = parseFloat(lng, 0); err != nil {
		return Query{}, err
	}
	if q.RadiusKm, err = parseFloat(radius, DefaultRadiusKm); err != nil {
		return Query{}, err
	}

	if q.Origin.Lat < -90 || q.Origin.Lat > 90 ||
		q.Origin.Lng < -180 || q.Origin.Lng > 180 ||
		q.RadiusKm < 0 {
		return Query{}, ErrInvalidLocation
	}
	return q, nil
}

func parseFloat(s string, fallback float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidLocation
	}
	return v, nil
}
