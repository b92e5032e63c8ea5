package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// WaterBehavior реализует поведение блока воды
type WaterBehavior struct{}

// ID возвращает идентификатор блока
func (b *WaterBehavior) ID() block.BlockID {
	return block.WaterBlockID
}

// Name возвращает имя блока
func (b *WaterBehavior) Name() string {
	return "water"
}

// Solid возвращает false: вода прозрачна, грани соседей видны сквозь неё
func (b *WaterBehavior) Solid() bool {
	return false
}

// OnPlace инициализирует уровень воды
func (b *WaterBehavior) OnPlace(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "level", 8)
}

// OnBreak вызывается при разрушении: вода не оставляет дропа
func (b *WaterBehavior) OnBreak(api block.API, pos vec.Vec3) {}

// CreateMetadata создает начальные метаданные для блока
func (b *WaterBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"level": 8,
	}
}

func init() {
	block.Register(block.WaterBlockID, &WaterBehavior{})
}
