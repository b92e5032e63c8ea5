package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SolidFunc сообщает, занята ли ячейка (x,y,z) непрозрачным блоком.
// Координаты локальные для чанка; запросы за границами сетки
// должны возвращать false (снаружи — воздух).
type SolidFunc func(x, y, z int) bool

// Направления граней куба и смещения к соседям
var faceDirs = [6][3]int{
	{1, 0, 0},  // +X
	{-1, 0, 0}, // -X
	{0, 1, 0},  // +Y
	{0, -1, 0}, // -Y
	{0, 0, 1},  // +Z
	{0, 0, -1}, // -Z
}

// Четыре угла каждой грани единичного куба (порядок обхода против часовой)
var faceCorners = [6][4][3]float32{
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // +X
	{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}, // -X
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // +Y
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // -Y
	{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1}}, // +Z
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // -Z
}

// Build строит меш сетки размером sx*sy*sz с отсечением скрытых граней:
// грань испускается только если соседняя ячейка прозрачна. Границы чанка
// считаются воздухом — соседние чанки друг друга не закрывают.
// origin — мировая позиция угла чанка, добавляется ко всем вершинам.
func Build(origin mgl32.Vec3, sx, sy, sz int, solid SolidFunc) *Mesh {
	m := &Mesh{}

	isSolid := func(x, y, z int) bool {
		if x < 0 || x >= sx || y < 0 || y >= sy || z < 0 || z >= sz {
			return false
		}
		return solid(x, y, z)
	}

	for x := 0; x < sx; x++ {
		for y := 0; y < sy; y++ {
			for z := 0; z < sz; z++ {
				if !solid(x, y, z) {
					continue
				}

				for face, dir := range faceDirs {
					if isSolid(x+dir[0], y+dir[1], z+dir[2]) {
						continue // Грань закрыта соседом
					}
					emitFace(m, origin, x, y, z, face)
				}
			}
		}
	}

	return m
}

// emitFace добавляет в меш четыре вершины и шесть индексов одной грани
func emitFace(m *Mesh, origin mgl32.Vec3, x, y, z, face int) {
	base := uint32(len(m.Vertices))
	normal := mgl32.Vec3{
		float32(faceDirs[face][0]),
		float32(faceDirs[face][1]),
		float32(faceDirs[face][2]),
	}

	for _, corner := range faceCorners[face] {
		vertex := mgl32.Vec3{
			origin.X() + float32(x) + corner[0],
			origin.Y() + float32(y) + corner[1],
			origin.Z() + float32(z) + corner[2],
		}
		m.Vertices = append(m.Vertices, vertex)
		m.Normals = append(m.Normals, normal)
	}

	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
