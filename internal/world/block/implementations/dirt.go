package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "dirt"
}

// Solid возвращает true, земля непрозрачна
func (b *DirtBehavior) Solid() bool {
	return true
}

// OnPlace инициализирует блок при установке
func (b *DirtBehavior) OnPlace(api block.API, pos vec.Vec3) {
	// Инициализируем влажность земли
	api.SetBlockMetadata(pos, "moisture", 0)
}

// OnBreak вызывается при разрушении блока
func (b *DirtBehavior) OnBreak(api block.API, pos vec.Vec3) {
	// Ничего не делаем при разрушении
}

// CreateMetadata создает начальные метаданные для блока
func (b *DirtBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"moisture": 0,
	}
}

func init() {
	block.Register(block.DirtBlockID, &DirtBehavior{})
}
