package vec

import "math"

// Vec2 представляет идентификатор чанка (chunkX, chunkZ).
// Значимый тип: равенство и хэширование зависят от обоих полей,
// поэтому Vec2 используется напрямую как ключ карты чанков.
type Vec2 struct {
	X, Z int
}

// Sub возвращает относительное смещение между двумя чанками
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Z: v.Z - other.Z}
}

// Add складывает два идентификатора чанков
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Z: v.Z + other.Z}
}

// Equals проверяет равенство идентификаторов
func (v Vec2) Equals(other Vec2) bool {
	return v.X == other.X && v.Z == other.Z
}

// DistanceTo вычисляет расстояние до другого чанка
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}
