package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// AirBehavior реализует поведение пустого блока (воздуха).
// Воздух — сентинел пустоты: он никогда не хранится в индексах мира.
type AirBehavior struct{}

func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

func (b *AirBehavior) Name() string {
	return "air"
}

// Solid возвращает false: воздух не закрывает грани соседей
func (b *AirBehavior) Solid() bool {
	return false
}

func (b *AirBehavior) OnPlace(api block.API, pos vec.Vec3) {}

func (b *AirBehavior) OnBreak(api block.API, pos vec.Vec3) {}

func (b *AirBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
}
