package block

import (
	"github.com/annel0/voxel-world/internal/vec"
)

type Metadata map[string]interface{}

// BlockBehavior определяет поведение типа блока.
// Поведение статично и разделяется всеми экземплярами блока этого типа;
// состояние конкретного блока живёт в его метаданных.
type BlockBehavior interface {
	ID() BlockID
	Name() string

	// Solid сообщает, закрывает ли блок соседние грани при построении меша
	Solid() bool

	// OnPlace вызывается после установки блока в мир
	OnPlace(api API, pos vec.Vec3)

	// OnBreak вызывается при разрушении блока, до удаления его из индексов
	OnBreak(api API, pos vec.Vec3)

	// CreateMetadata создаёт начальные метаданные для нового блока
	CreateMetadata() Metadata
}
