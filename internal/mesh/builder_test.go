package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func solidAt(cells map[[3]int]bool) SolidFunc {
	return func(x, y, z int) bool {
		return cells[[3]int{x, y, z}]
	}
}

func TestBuildEmptyGrid(t *testing.T) {
	m := Build(mgl32.Vec3{}, 16, 16, 16, solidAt(nil))

	if !m.Empty() {
		t.Errorf("Пустая сетка должна давать пустой меш, получено %d граней", m.FaceCount())
	}
}

func TestBuildSingleCube(t *testing.T) {
	m := Build(mgl32.Vec3{}, 16, 16, 16, solidAt(map[[3]int]bool{
		{3, 4, 5}: true,
	}))

	// Одинокий куб: все 6 граней видимы
	if m.FaceCount() != 6 {
		t.Errorf("Ожидалось 6 граней, получено %d", m.FaceCount())
	}
	if len(m.Vertices) != 24 {
		t.Errorf("Ожидалось 24 вершины, получено %d", len(m.Vertices))
	}
	if len(m.Normals) != len(m.Vertices) {
		t.Errorf("Нормаль на каждую вершину: %d != %d", len(m.Normals), len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("Ожидалось 36 индексов, получено %d", len(m.Indices))
	}
}

func TestBuildAdjacentCubesCullSharedFace(t *testing.T) {
	m := Build(mgl32.Vec3{}, 16, 16, 16, solidAt(map[[3]int]bool{
		{0, 0, 0}: true,
		{1, 0, 0}: true,
	}))

	// Два соседних куба: общая грань скрыта с обеих сторон, 12-2=10
	if m.FaceCount() != 10 {
		t.Errorf("Ожидалось 10 граней, получено %d", m.FaceCount())
	}
}

func TestBuildGridBorderIsAir(t *testing.T) {
	// Куб в углу сетки: соседи за границей считаются воздухом,
	// поэтому все 6 граней видимы
	m := Build(mgl32.Vec3{}, 16, 16, 16, solidAt(map[[3]int]bool{
		{0, 0, 0}: true,
	}))

	if m.FaceCount() != 6 {
		t.Errorf("Ожидалось 6 граней у куба в углу, получено %d", m.FaceCount())
	}
}

func TestBuildAppliesOrigin(t *testing.T) {
	origin := mgl32.Vec3{32, 0, -16}
	m := Build(origin, 16, 16, 16, solidAt(map[[3]int]bool{
		{0, 0, 0}: true,
	}))

	// Все вершины куба лежат в пределах единичной ячейки от origin
	for _, v := range m.Vertices {
		if v.X() < origin.X() || v.X() > origin.X()+1 ||
			v.Z() < origin.Z() || v.Z() > origin.Z()+1 {
			t.Fatalf("Вершина %v вне ячейки с началом %v", v, origin)
		}
	}
}

func TestIndicesReferenceExistingVertices(t *testing.T) {
	m := Build(mgl32.Vec3{}, 4, 4, 4, solidAt(map[[3]int]bool{
		{0, 0, 0}: true,
		{2, 2, 2}: true,
	}))

	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("Индекс %d ссылается за пределы буфера вершин (%d)", idx, len(m.Vertices))
		}
	}
}
