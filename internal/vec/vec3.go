package vec

// Vec3 представляет глобальную координату вокселя в мире.
// X и Z могут быть отрицательными: мир расширяется в обе стороны от нуля.
type Vec3 struct {
	X int
	Y int
	Z int
}

// ChunkCoords преобразует глобальные координаты в идентификатор чанка.
// Арифметический сдвиг — это деление с округлением вниз (floor),
// поэтому отрицательные координаты попадают в правильный чанк:
// (-1)>>4 == -1, а не 0. Y не участвует — чанк занимает всю высоту мира.
func (v Vec3) ChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Z: v.Z >> 4} // Деление на 16
}

// LocalOffset возвращает локальные координаты внутри чанка.
// Маска даёт floor-модуль: результат всегда в [0,16),
// в том числе для отрицательных X/Z.
func (v Vec3) LocalOffset() Vec3 {
	return Vec3{X: v.X & 0xF, Y: v.Y, Z: v.Z & 0xF} // Модуль 16
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub возвращает разность векторов
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}
