package world

import (
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

func TestChunkCreateAndGetBlock(t *testing.T) {
	coords := vec.Vec2{X: 5, Z: 10}
	chunk := NewChunk(coords)

	// Проверяем координаты
	if chunk.Coords.X != 5 || chunk.Coords.Z != 10 {
		t.Errorf("Ожидались координаты {5,10}, получено {%d,%d}", chunk.Coords.X, chunk.Coords.Z)
	}

	// Новый чанк пуст: все ячейки — воздух
	local := vec.Vec3{X: 3, Y: 20, Z: 4}
	if chunk.BlockAt(local) != nil {
		t.Error("Ожидалась пустая ячейка (nil), получен блок")
	}

	// Устанавливаем и проверяем блок
	b := NewBlock(block.StoneBlockID)
	chunk.SetBlock(local, b)
	if chunk.BlockAt(local) != b {
		t.Error("Установленный блок должен читаться из той же ячейки")
	}

	// Очистка ячейки
	chunk.SetBlock(local, nil)
	if chunk.BlockAt(local) != nil {
		t.Error("Ячейка должна быть пустой после очистки")
	}
}

func TestChunkBlockAtOutOfHeight(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})

	if chunk.BlockAt(vec.Vec3{X: 0, Y: -1, Z: 0}) != nil {
		t.Error("Y ниже мира должен давать воздух")
	}
	if chunk.BlockAt(vec.Vec3{X: 0, Y: WorldHeight, Z: 0}) != nil {
		t.Error("Y выше мира должен давать воздух")
	}
}

func TestChunkBuildMesh(t *testing.T) {
	chunk := NewChunk(vec.Vec2{X: 0, Z: 0})

	if chunk.Mesh() != nil {
		t.Error("До первой сборки меша нет")
	}
	if chunk.MeshVersion() != 0 {
		t.Errorf("Счётчик пересборок должен начинаться с 0, получено %d", chunk.MeshVersion())
	}

	chunk.SetBlock(vec.Vec3{X: 3, Y: 10, Z: 3}, NewBlock(block.StoneBlockID))
	chunk.BuildMesh()

	if chunk.MeshVersion() != 1 {
		t.Errorf("Ожидалась 1 пересборка, получено %d", chunk.MeshVersion())
	}

	m := chunk.Mesh()
	if m == nil {
		t.Fatal("После BuildMesh меш должен существовать")
	}
	// Одинокий куб даёт 6 граней
	if m.FaceCount() != 6 {
		t.Errorf("Ожидалось 6 граней, получено %d", m.FaceCount())
	}

	// Повторная сборка безопасна и увеличивает счётчик
	chunk.BuildMesh()
	if chunk.MeshVersion() != 2 {
		t.Errorf("Ожидалось 2 пересборки, получено %d", chunk.MeshVersion())
	}
}

func TestChunkMeshSkipsNonSolid(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})

	// Вода прозрачна и не даёт граней
	chunk.SetBlock(vec.Vec3{X: 1, Y: 1, Z: 1}, NewBlock(block.WaterBlockID))
	chunk.BuildMesh()

	if !chunk.Mesh().Empty() {
		t.Errorf("Прозрачные блоки не должны давать геометрию, получено %d граней",
			chunk.Mesh().FaceCount())
	}
}

func TestChunkBlockCount(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})

	if chunk.BlockCount() != 0 {
		t.Errorf("Пустой чанк: ожидалось 0 блоков, получено %d", chunk.BlockCount())
	}

	chunk.SetBlock(vec.Vec3{X: 0, Y: 0, Z: 0}, NewBlock(block.StoneBlockID))
	chunk.SetBlock(vec.Vec3{X: 15, Y: 63, Z: 15}, NewBlock(block.DirtBlockID))

	if chunk.BlockCount() != 2 {
		t.Errorf("Ожидалось 2 блока, получено %d", chunk.BlockCount())
	}
}
