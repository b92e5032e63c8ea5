package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

func (b *StoneBehavior) Name() string {
	return "stone"
}

func (b *StoneBehavior) Solid() bool {
	return true
}

func (b *StoneBehavior) OnPlace(api block.API, pos vec.Vec3) {}

func (b *StoneBehavior) OnBreak(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "drops", "stone")
}

// CreateMetadata создает начальные метаданные: камень имеет прочность
func (b *StoneBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"hardness": 3,
	}
}

func init() {
	block.Register(block.StoneBlockID, &StoneBehavior{})
}
