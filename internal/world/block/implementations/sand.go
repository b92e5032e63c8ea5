package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// SandBehavior реализует поведение блока песка
type SandBehavior struct{}

func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

func (b *SandBehavior) Name() string {
	return "sand"
}

func (b *SandBehavior) Solid() bool {
	return true
}

func (b *SandBehavior) OnPlace(api block.API, pos vec.Vec3) {}

func (b *SandBehavior) OnBreak(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "drops", "sand")
}

func (b *SandBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

func init() {
	block.Register(block.SandBlockID, &SandBehavior{})
}
