package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

func TestGeneratorDeterminism(t *testing.T) {
	// Одинаковый сид даёт одинаковый ландшафт
	gen1 := NewWorldGenerator(42)
	gen2 := NewWorldGenerator(42)

	coords := vec.Vec2{X: 3, Z: -2}
	chunk1 := gen1.GenerateChunk(coords)
	chunk2 := gen2.GenerateChunk(coords)

	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < WorldHeight; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				b1 := chunk1.Blocks[x][y][z]
				b2 := chunk2.Blocks[x][y][z]

				if b1 == nil || b2 == nil {
					if b1 != b2 {
						t.Fatalf("Расхождение в ячейке (%d,%d,%d): %v != %v", x, y, z, b1, b2)
					}
					continue
				}
				if b1.ID != b2.ID {
					t.Fatalf("Расхождение типов в ячейке (%d,%d,%d): %d != %d", x, y, z, b1.ID, b2.ID)
				}
			}
		}
	}
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	gen1 := NewWorldGenerator(1)
	gen2 := NewWorldGenerator(99999)

	chunk1 := gen1.GenerateChunk(vec.Vec2{})
	chunk2 := gen2.GenerateChunk(vec.Vec2{})

	// Хотя бы одна ячейка должна отличаться
	different := false
	for x := 0; x < ChunkSizeX && !different; x++ {
		for y := 0; y < WorldHeight && !different; y++ {
			for z := 0; z < ChunkSizeZ && !different; z++ {
				b1 := chunk1.Blocks[x][y][z]
				b2 := chunk2.Blocks[x][y][z]
				if (b1 == nil) != (b2 == nil) {
					different = true
				} else if b1 != nil && b1.ID != b2.ID {
					different = true
				}
			}
		}
	}
	assert.True(t, different, "Разные сиды должны давать разный ландшафт")
}

func TestGeneratorColumnStructure(t *testing.T) {
	gen := NewWorldGenerator(12345)
	chunk := gen.GenerateChunk(vec.Vec2{X: 0, Z: 0})

	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			// Основание колонны всегда камень
			base := chunk.Blocks[x][0][z]
			require.NotNil(t, base, "Колонна (%d,%d) должна иметь основание", x, z)
			assert.Equal(t, block.StoneBlockID, base.ID, "Основание колонны — камень")

			// Вода не поднимается выше уровня моря
			for y := SeaLevel + 1; y < WorldHeight; y++ {
				b := chunk.Blocks[x][y][z]
				if b != nil && b.ID == block.WaterBlockID {
					t.Fatalf("Вода выше уровня моря в (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}

func TestGeneratorStampsGlobalPositions(t *testing.T) {
	gen := NewWorldGenerator(7)
	coords := vec.Vec2{X: -2, Z: 5}
	chunk := gen.GenerateChunk(coords)

	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < WorldHeight; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				b := chunk.Blocks[x][y][z]
				if b == nil {
					continue
				}
				want := vec.Vec3{X: coords.X*ChunkSizeX + x, Y: y, Z: coords.Z*ChunkSizeZ + z}
				if b.Position != want {
					t.Fatalf("Ячейка (%d,%d,%d): ожидалась глобальная координата %v, получено %v",
						x, y, z, want, b.Position)
				}
				// Координата блока указывает обратно на свой чанк
				if b.Position.ChunkCoords() != coords {
					t.Fatalf("Координата %v не принадлежит чанку %v", b.Position, coords)
				}
			}
		}
	}
}

func TestGeneratorChunkIndexedOnAdd(t *testing.T) {
	// Сгенерированный чанк индексируется в плоском индексе при регистрации
	gen := NewWorldGenerator(7)
	terrain := NewTerrain()

	chunk := gen.GenerateChunk(vec.Vec2{X: -1, Z: -1})
	terrain.AddChunk(chunk)

	assert.Equal(t, chunk.BlockCount(), terrain.BlockCount(),
		"Плоский индекс содержит все блоки чанка")

	// Выборочная проверка согласованности индексов
	local := vec.Vec3{X: 0, Y: 0, Z: 0}
	global := vec.Vec3{X: -16, Y: 0, Z: -16}
	assert.Same(t, chunk.BlockAt(local), terrain.GetBlock(global.X, global.Y, global.Z),
		"Оба индекса ссылаются на один экземпляр")
}

func TestGeneratorPregenerate(t *testing.T) {
	gen := NewWorldGenerator(7)
	terrain := NewTerrain()

	gen.Pregenerate(terrain, 2)

	assert.Equal(t, 25, terrain.ChunkCount(), "Радиус 2 даёт квадрат 5x5 чанков")

	for cx := -2; cx <= 2; cx++ {
		for cz := -2; cz <= 2; cz++ {
			_, ok := terrain.ChunkAt(vec.Vec2{X: cx, Z: cz})
			assert.True(t, ok, "Чанк (%d,%d) должен быть загружен", cx, cz)
		}
	}
}

func BenchmarkGenerateChunk(b *testing.B) {
	gen := NewWorldGenerator(12345)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.GenerateChunk(vec.Vec2{X: i, Z: -i})
	}
}
