package block

import (
	"github.com/annel0/voxel-world/internal/vec"
)

// API определяет узкий интерфейс мира, доступный поведениям блоков.
// Поведения не получают прямой доступ к чанкам и индексам —
// только чтение соседей и работу с метаданными.
type API interface {
	// BlockIDAt возвращает идентификатор типа блока в указанной позиции
	// (AirBlockID для пустой позиции или незагруженного чанка).
	BlockIDAt(pos vec.Vec3) BlockID

	// SetBlockMetadata устанавливает значение метаданных блока по ключу
	SetBlockMetadata(pos vec.Vec3, key string, value interface{})

	// GetBlockMetadata возвращает значение метаданных блока по ключу
	GetBlockMetadata(pos vec.Vec3, key string) (interface{}, bool)
}
