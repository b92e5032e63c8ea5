package world

import (
	"math/rand"

	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Константы генерации ландшафта
const (
	SeaLevel   = 20 // Уровень моря: ниже него низины заливаются водой
	MinSurface = 8  // Минимальная высота поверхности
	MaxSurface = 48 // Максимальная высота поверхности
	BeachBand  = 2  // Высотная полоса песка вокруг уровня моря
)

// WorldGenerator генерирует ландшафт мира.
// Генерация детерминирована: одинаковый сид и координаты чанка
// всегда дают одинаковое содержимое.
type WorldGenerator struct {
	Seed          int64   // Сид для генерации шума
	NoiseScale    float64 // Масштаб шума высот
	ForestDensity float64 // Шанс дерева на блоке травы (от 0 до 1)

	noise *util.Noise
}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator(seed int64) *WorldGenerator {
	return &WorldGenerator{
		Seed:          seed,
		NoiseScale:    0.05, // Настройка сглаженности ландшафта
		ForestDensity: 0.02, // 2% шанс дерева на травяном блоке
		noise:         util.NewNoise(seed),
	}
}

// GenerateChunk генерирует чанк по его координатам.
// Колонны заполняются снизу вверх: камень, корка земли, поверхность
// (трава или песок у воды), вода до уровня моря, изредка деревья.
func (wg *WorldGenerator) GenerateChunk(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)

	// Локальный генератор случайных чисел для детерминированности:
	// уникальный сид на основе глобального сида и координат чанка
	chunkSeed := wg.Seed + int64(coords.X*31) + int64(coords.Z*17)
	rng := rand.New(rand.NewSource(chunkSeed))

	globalStartX := coords.X << 4 // chunkX * 16
	globalStartZ := coords.Z << 4 // chunkZ * 16

	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			globalX := globalStartX + x
			globalZ := globalStartZ + z

			surface := wg.surfaceHeight(globalX, globalZ)

			// Тело колонны
			for y := 0; y <= surface; y++ {
				var id block.BlockID
				switch {
				case y < surface-3:
					id = block.StoneBlockID
				case y < surface:
					id = block.DirtBlockID
				default:
					id = wg.surfaceBlock(surface)
				}
				chunk.Blocks[x][y][z] = wg.newBlockAt(id, globalX, y, globalZ)
			}

			// Заливаем низины водой до уровня моря
			for y := surface + 1; y <= SeaLevel; y++ {
				chunk.Blocks[x][y][z] = wg.newBlockAt(block.WaterBlockID, globalX, y, globalZ)
			}

			// Изредка ставим дерево на траве
			if surface > SeaLevel+BeachBand && rng.Float64() < wg.ForestDensity {
				wg.placeTree(chunk, x, surface+1, z, globalX, globalZ, rng)
			}
		}
	}

	return chunk
}

// Pregenerate генерирует квадрат чанков радиусом radius вокруг начала
// координат и регистрирует их в реестре мира
func (wg *WorldGenerator) Pregenerate(t *Terrain, radius int) {
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			t.AddChunk(wg.GenerateChunk(vec.Vec2{X: cx, Z: cz}))
		}
	}
}

// surfaceHeight возвращает высоту поверхности для глобальной колонны
func (wg *WorldGenerator) surfaceHeight(globalX, globalZ int) int {
	noiseX := float64(globalX) * wg.NoiseScale
	noiseZ := float64(globalZ) * wg.NoiseScale

	height := wg.noise.At2D(noiseX, noiseZ) // от 0 до 1
	return MinSurface + int(height*float64(MaxSurface-MinSurface))
}

// surfaceBlock возвращает тип верхнего блока колонны
func (wg *WorldGenerator) surfaceBlock(surface int) block.BlockID {
	if surface <= SeaLevel+BeachBand {
		return block.SandBlockID // Пляж и дно
	}
	return block.GrassBlockID
}

// placeTree ставит ствол дерева высотой 3-5 блоков над поверхностью
func (wg *WorldGenerator) placeTree(chunk *Chunk, x, baseY, z, globalX, globalZ int, rng *rand.Rand) {
	treeHeight := 3 + rng.Intn(3)
	for dy := 0; dy < treeHeight && baseY+dy < WorldHeight; dy++ {
		chunk.Blocks[x][baseY+dy][z] = wg.newBlockAt(block.TreeBlockID, globalX, baseY+dy, globalZ)
	}
}

// newBlockAt создаёт блок с проставленной глобальной координатой
func (wg *WorldGenerator) newBlockAt(id block.BlockID, x, y, z int) *Block {
	b := NewBlock(id)
	b.Position = vec.Vec3{X: x, Y: y, Z: z}
	return b
}
