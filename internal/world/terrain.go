package world

import (
	"errors"
	"fmt"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

var (
	// ErrChunkNotLoaded возвращается при мутации координаты,
	// чей чанк отсутствует в реестре
	ErrChunkNotLoaded = errors.New("chunk not loaded")

	// ErrOutOfBounds возвращается для Y вне диапазона [0, WorldHeight)
	ErrOutOfBounds = errors.New("position outside world bounds")

	// ErrPlaceAir возвращается при попытке установить воздух:
	// пустота выражается удалением блока, а не его установкой
	ErrPlaceAir = errors.New("cannot place air block")
)

// Terrain — реестр чанков и блоков мира. Каждая мутация проходит через
// него: он обновляет владеющий массив чанка, вторичный плоский индекс
// и пересобирает меш ровно одного затронутого чанка.
//
// Оба индекса всегда согласованы: для любой непустой координаты плоский
// индекс и массив владеющего чанка ссылаются на один и тот же экземпляр
// блока. Плоский индекс ключуется ГЛОБАЛЬНЫМИ координатами.
//
// Terrain рассчитан на один мутирующий поток (игровой цикл) и не
// содержит блокировок; многопоточный доступ требует внешней
// синхронизации.
type Terrain struct {
	chunks map[vec.Vec2]*Chunk // Реестр загруженных чанков
	blocks map[vec.Vec3]*Block // Плоский индекс блоков по глобальным координатам
	bus    eventbus.EventBus   // Необязательная шина событий мутаций
}

// NewTerrain создаёт пустой реестр мира.
// Экземпляр принадлежит объекту приложения и передаётся явно —
// глобального синглтона нет.
func NewTerrain() *Terrain {
	return &Terrain{
		chunks: make(map[vec.Vec2]*Chunk),
		blocks: make(map[vec.Vec3]*Block),
	}
}

// SetEventBus подключает шину событий; nil отключает публикацию
func (t *Terrain) SetEventBus(bus eventbus.EventBus) {
	t.bus = bus
}

// AddChunk регистрирует чанк и индексирует его блоки в плоском индексе.
// Блоки чанка должны иметь проставленные глобальные координаты.
func (t *Terrain) AddChunk(c *Chunk) {
	t.chunks[c.Coords] = c

	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < WorldHeight; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				if b := c.Blocks[x][y][z]; b != nil {
					t.blocks[b.Position] = b
				}
			}
		}
	}
}

// ChunkAt возвращает чанк по идентификатору
func (t *Terrain) ChunkAt(id vec.Vec2) (*Chunk, bool) {
	c, ok := t.chunks[id]
	return c, ok
}

// ChunkCount возвращает число загруженных чанков
func (t *Terrain) ChunkCount() int {
	return len(t.chunks)
}

// BlockCount возвращает число блоков в плоском индексе
func (t *Terrain) BlockCount() int {
	return len(t.blocks)
}

// GetBlock возвращает блок по глобальным координатам (nil — воздух)
func (t *Terrain) GetBlock(x, y, z int) *Block {
	return t.blocks[vec.Vec3{X: x, Y: y, Z: z}]
}

// PlaceBlock устанавливает готовый экземпляр блока по глобальным
// координатам и возвращает использованное локальное смещение.
// Существующий блок в той же ячейке вытесняется из обоих индексов.
func (t *Terrain) PlaceBlock(b *Block, x, y, z int) (vec.Vec3, error) {
	pos := vec.Vec3{X: x, Y: y, Z: z}

	if b == nil || b.ID == block.AirBlockID {
		return vec.Vec3{}, ErrPlaceAir
	}
	if y < 0 || y >= WorldHeight {
		return vec.Vec3{}, fmt.Errorf("%w: y=%d", ErrOutOfBounds, y)
	}

	chunkID := pos.ChunkCoords()
	chunk, exists := t.chunks[chunkID]
	if !exists {
		return vec.Vec3{}, fmt.Errorf("%w: %v", ErrChunkNotLoaded, chunkID)
	}

	local := pos.LocalOffset()
	b.Position = pos

	chunk.SetBlock(local, b)
	t.blocks[pos] = b

	if behavior, ok := b.GetBehavior(); ok {
		behavior.OnPlace(t, pos)
	}

	chunk.BuildMesh()
	blocksPlaced.Inc()
	t.publishBlockEvent(EventTypeBlockPlaced, b)

	logging.Debug("Блок %s установлен в %v (чанк %v, локально %v)",
		b.Instance, pos, chunkID, local)

	return local, nil
}

// PlaceBlockAt устанавливает блок по структурированной позиции,
// отбрасывая локальное смещение
func (t *Terrain) PlaceBlockAt(b *Block, pos vec.Vec3) error {
	_, err := t.PlaceBlock(b, pos.X, pos.Y, pos.Z)
	return err
}

// PlaceType создаёт новый блок по имени типа через регистр поведений,
// проставляет ему координату и устанавливает его в мир
func (t *Terrain) PlaceType(typeName string, x, y, z int) (vec.Vec3, error) {
	b, err := NewBlockByName(typeName)
	if err != nil {
		return vec.Vec3{}, err
	}
	return t.PlaceBlock(b, x, y, z)
}

// PlaceTypeAt устанавливает блок по имени типа и структурированной позиции
func (t *Terrain) PlaceTypeAt(typeName string, pos vec.Vec3) (vec.Vec3, error) {
	return t.PlaceType(typeName, pos.X, pos.Y, pos.Z)
}

// RemoveBlock молча удаляет блок: без вызова поведения разрушения.
// Используется для правок мира (генерация, инструменты), а не для
// разрушения игроком. Пустая координата — no-op без пересборки меша.
func (t *Terrain) RemoveBlock(x, y, z int) error {
	pos := vec.Vec3{X: x, Y: y, Z: z}

	b, exists := t.blocks[pos]
	if !exists {
		return nil
	}

	chunkID := pos.ChunkCoords()
	chunk, ok := t.chunks[chunkID]
	if !ok {
		return fmt.Errorf("%w: %v", ErrChunkNotLoaded, chunkID)
	}

	delete(t.blocks, pos)
	chunk.SetBlock(pos.LocalOffset(), nil)

	chunk.BuildMesh()
	blocksRemoved.Inc()
	t.publishBlockEvent(EventTypeBlockRemoved, b)

	return nil
}

// BreakBlock разрушает блок: вызывает поведение разрушения
// (дроп, эффекты) строго до очистки индексов, затем удаляет блок и
// пересобирает меш владеющего чанка. Пустая координата или уже
// разрушенный блок — no-op без пересборки.
func (t *Terrain) BreakBlock(x, y, z int) error {
	pos := vec.Vec3{X: x, Y: y, Z: z}

	b, exists := t.blocks[pos]
	if !exists || b.Broken {
		return nil
	}

	chunkID := pos.ChunkCoords()
	chunk, ok := t.chunks[chunkID]
	if !ok {
		return fmt.Errorf("%w: %v", ErrChunkNotLoaded, chunkID)
	}

	// Поведение разрушения видит блок ещё в мире
	b.Break(t)

	delete(t.blocks, pos)
	chunk.SetBlock(pos.LocalOffset(), nil)

	chunk.BuildMesh()
	blocksBroken.Inc()
	t.publishBlockEvent(EventTypeBlockBroken, b)

	logging.Debug("Блок %s разрушен в %v", b.Instance, pos)

	return nil
}

// RebuildAllChunks пересобирает меши всех загруженных чанков.
// Для массовой инвалидации (смена глобальных правил), не для
// одиночных правок: порядок обхода не гарантируется.
func (t *Terrain) RebuildAllChunks() {
	for _, chunk := range t.chunks {
		chunk.BuildMesh()
	}
}

// Close освобождает реестр: обнуляет оба индекса, чтобы блоки и чанки
// не удерживались после выгрузки мира
func (t *Terrain) Close() {
	t.chunks = make(map[vec.Vec2]*Chunk)
	t.blocks = make(map[vec.Vec3]*Block)
	logging.Debug("Реестр мира очищен")
}

//================ Реализация block.API =================//

// BlockIDAt возвращает идентификатор типа блока в указанной позиции
func (t *Terrain) BlockIDAt(pos vec.Vec3) block.BlockID {
	b, exists := t.blocks[pos]
	if !exists {
		return block.AirBlockID
	}
	return b.ID
}

// SetBlockMetadata устанавливает значение метаданных блока по ключу
func (t *Terrain) SetBlockMetadata(pos vec.Vec3, key string, value interface{}) {
	b, exists := t.blocks[pos]
	if !exists {
		return
	}
	if b.Payload == nil {
		b.Payload = make(map[string]interface{})
	}
	b.Payload[key] = value
}

// GetBlockMetadata возвращает значение метаданных блока по ключу
func (t *Terrain) GetBlockMetadata(pos vec.Vec3, key string) (interface{}, bool) {
	b, exists := t.blocks[pos]
	if !exists {
		return nil, false
	}
	value, ok := b.Payload[key]
	return value, ok
}
