package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-world/internal/mesh"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Размеры чанка. Чанк занимает всю высоту мира,
// поэтому его идентификатор двумерный (X, Z).
const (
	ChunkSizeX  = 16
	ChunkSizeZ  = 16
	WorldHeight = 64
)

// Chunk представляет участок мира размером 16 x WorldHeight x 16 блоков.
// Массив Blocks — владеющий контейнер блоков: nil означает воздух.
type Chunk struct {
	Coords vec.Vec2 // Идентификатор чанка в мире

	// Blocks[x][y][z], локальные координаты внутри чанка
	Blocks [ChunkSizeX][WorldHeight][ChunkSizeZ]*Block

	chunkMesh   *mesh.Mesh // Геометрия последней сборки, nil до первой
	meshVersion uint64     // Счётчик пересборок меша
}

// NewChunk создаёт пустой чанк с указанными координатами
func NewChunk(coords vec.Vec2) *Chunk {
	return &Chunk{Coords: coords}
}

// BlockAt возвращает блок по локальным координатам (nil — воздух)
func (c *Chunk) BlockAt(local vec.Vec3) *Block {
	if local.Y < 0 || local.Y >= WorldHeight {
		return nil
	}
	return c.Blocks[local.X][local.Y][local.Z]
}

// SetBlock устанавливает блок по локальным координатам (nil очищает ячейку)
func (c *Chunk) SetBlock(local vec.Vec3, b *Block) {
	c.Blocks[local.X][local.Y][local.Z] = b
}

// BuildMesh синхронно пересобирает геометрию чанка из текущего
// содержимого массива блоков. Скрытые грани отсекаются; границы
// чанка считаются воздухом.
func (c *Chunk) BuildMesh() {
	origin := mgl32.Vec3{
		float32(c.Coords.X * ChunkSizeX),
		0,
		float32(c.Coords.Z * ChunkSizeZ),
	}

	c.chunkMesh = mesh.Build(origin, ChunkSizeX, WorldHeight, ChunkSizeZ, func(x, y, z int) bool {
		b := c.Blocks[x][y][z]
		if b == nil {
			return false
		}
		behavior, exists := block.Get(b.ID)
		return exists && behavior.Solid()
	})

	c.meshVersion++
	meshRebuilds.Inc()
}

// Mesh возвращает геометрию последней сборки (nil до первого BuildMesh)
func (c *Chunk) Mesh() *mesh.Mesh {
	return c.chunkMesh
}

// MeshVersion возвращает количество выполненных пересборок меша
func (c *Chunk) MeshVersion() uint64 {
	return c.meshVersion
}

// BlockCount возвращает число непустых ячеек чанка
func (c *Chunk) BlockCount() int {
	count := 0
	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < WorldHeight; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				if c.Blocks[x][y][z] != nil {
					count++
				}
			}
		}
	}
	return count
}
