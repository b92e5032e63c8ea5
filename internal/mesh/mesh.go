package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh содержит CPU-буферы геометрии одного чанка.
// Загрузка в GPU — ответственность рендера, не этого пакета.
type Mesh struct {
	Vertices []mgl32.Vec3 // Позиции вершин в мировых координатах
	Normals  []mgl32.Vec3 // Нормаль на каждую вершину
	Indices  []uint32     // Два треугольника на видимую грань
}

// FaceCount возвращает количество видимых граней в меше
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / 6
}

// Empty возвращает true, если меш не содержит геометрии
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}
