package models

// DefaultBoxDegrees — полуширина квадрата поиска соседей в градусах.
const DefaultBoxDegrees = 0.01

// BoundingBox — прямоугольник в градусах широты/долготы.
//
// Это равнопромежуточное приближение, а не геодезический радиус:
// 0.01° по долготе на широте Токио примерно 900 м, на экваторе примерно 1.1 км.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// NewBoundingBox строит квадрат [lat-d, lat+d] x [lon-d, lon+d].
func NewBoundingBox(lat, lon, d float64) BoundingBox {
	return BoundingBox{
		MinLat: lat - d,
		MaxLat: lat + d,
		MinLon: lon - d,
		MaxLon: lon + d,
	}
}

// Contains проверяет попадание точки в прямоугольник (границы включительно).
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}
