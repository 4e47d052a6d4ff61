package spatial

import (
	"github.com/golang/geo/s2"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// LatLng converts p to an s2 coordinate
func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// Centroid calculates the arithmetic mean of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// BoundingBox calculates the bounding box of a set of points
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.LatLng())
	}

	lo, hi := rect.Lo(), rect.Hi()
	return lo.Lat.Degrees(), lo.Lng.Degrees(), hi.Lat.Degrees(), hi.Lng.Degrees()
}

// EarthRadiusMeters is the mean Earth radius used to scale s2 angles
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between a and b
func DistanceMeters(a, b Point) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * EarthRadiusMeters
}

// BoundingBoxDiagonal returns the corner-to-corner length of a bounding box in meters
func BoundingBoxDiagonal(minLat, minLon, maxLat, maxLon float64) float64 {
	return DistanceMeters(Point{Lat: minLat, Lon: minLon}, Point{Lat: maxLat, Lon: maxLon})
}
