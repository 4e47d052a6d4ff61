package spatial

import (
	"math"
	"testing"
)

func TestCentroid(t *testing.T) {
	got := Centroid([]Point{{Lat: 37.0, Lon: 127.0}, {Lat: 38.0, Lon: 128.0}})
	if got.Lat != 37.5 || got.Lon != 127.5 {
		t.Fatalf("Centroid = %+v, want {37.5 127.5}", got)
	}
	if got := Centroid(nil); got != (Point{}) {
		t.Fatalf("Centroid(nil) = %+v, want zero", got)
	}
}

func TestBoundingBox(t *testing.T) {
	minLat, minLon, maxLat, maxLon := BoundingBox([]Point{
		{Lat: 37.50, Lon: 127.03},
		{Lat: 37.48, Lon: 127.05},
		{Lat: 37.52, Lon: 126.99},
	})

	const eps = 1e-9
	for name, pair := range map[string][2]float64{
		"minLat": {minLat, 37.48},
		"minLon": {minLon, 126.99},
		"maxLat": {maxLat, 37.52},
		"maxLon": {maxLon, 127.05},
	} {
		if math.Abs(pair[0]-pair[1]) > eps {
			t.Errorf("%s = %v, want %v", name, pair[0], pair[1])
		}
	}
}

func TestDistanceMeters(t *testing.T) {
	if d := DistanceMeters(Point{Lat: 37.5, Lon: 127.0}, Point{Lat: 37.5, Lon: 127.0}); d != 0 {
		t.Fatalf("distance to self = %v", d)
	}

	// one degree of latitude is roughly 111.2 km
	d := DistanceMeters(Point{Lat: 37.0, Lon: 127.0}, Point{Lat: 38.0, Lon: 127.0})
	if math.Abs(d-111195) > 100 {
		t.Fatalf("distance = %v, want ~111195", d)
	}
	if diag := BoundingBoxDiagonal(37.0, 127.0, 38.0, 127.0); diag != d {
		t.Fatalf("diagonal = %v, want %v", diag, d)
	}
}
