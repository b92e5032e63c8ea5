package implementations

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// TreeBehavior реализует поведение блока ствола дерева
type TreeBehavior struct{}

func (b *TreeBehavior) ID() block.BlockID {
	return block.TreeBlockID
}

func (b *TreeBehavior) Name() string {
	return "tree"
}

func (b *TreeBehavior) Solid() bool {
	return true
}

// OnPlace инициализирует параметры дерева
func (b *TreeBehavior) OnPlace(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "tree_type", "oak")
}

// OnBreak вызывается при разрушении: дерево даёт древесину
func (b *TreeBehavior) OnBreak(api block.API, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "drops", "wood")
}

// CreateMetadata создает начальные метаданные для блока
func (b *TreeBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"tree_type": "oak",
	}
}

func init() {
	block.Register(block.TreeBlockID, &TreeBehavior{})
}
