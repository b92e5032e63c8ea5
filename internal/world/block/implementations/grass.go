package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// GrassBehavior реализует поведение блока травы
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "grass"
}

// Solid возвращает true, трава непрозрачна
func (b *GrassBehavior) Solid() bool {
	return true
}

// OnPlace инициализирует блок при установке
func (b *GrassBehavior) OnPlace(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "growth", 0)
}

// OnBreak вызывается при разрушении: трава оставляет после себя землю
// в метаданных дропа, сам блок при этом удаляется из мира как обычно
func (b *GrassBehavior) OnBreak(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "drops", "dirt")
}

// CreateMetadata создает начальные метаданные для блока
func (b *GrassBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"growth": 0,
	}
}

func init() {
	block.Register(block.GrassBlockID, &GrassBehavior{})
}
