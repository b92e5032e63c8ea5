package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Block представляет собой экземпляр блока, размещённый в мире.
// Владеющий контейнер — массив блоков чанка; плоский индекс Terrain
// хранит лишь вторичные ссылки на те же экземпляры.
type Block struct {
	Instance uuid.UUID              // Уникальный идентификатор экземпляра
	ID       block.BlockID          // Идентификатор типа блока
	Position vec.Vec3               // Глобальная координата, проставляется при установке
	Broken   bool                   // Блок уже разрушен
	Payload  map[string]interface{} // Метаданные блока (состояние)
}

// NewBlock создаёт новый блок с указанным ID и инициализированными метаданными
func NewBlock(id block.BlockID) *Block {
	behavior, exists := block.Get(id)
	if !exists {
		return &Block{
			Instance: uuid.New(),
			ID:       id,
			Payload:  make(map[string]interface{}),
		}
	}

	// Инициализируем метаданные через поведение блока
	return &Block{
		Instance: uuid.New(),
		ID:       id,
		Payload:  behavior.CreateMetadata(),
	}
}

// NewBlockByName создаёт новый блок по имени типа через регистр поведений.
// Неизвестное имя — явная ошибка, а не пустой блок.
func NewBlockByName(typeName string) (*Block, error) {
	behavior, exists := block.ByName(typeName)
	if !exists {
		return nil, fmt.Errorf("%w: %q", block.ErrUnknownBlockType, typeName)
	}
	return NewBlock(behavior.ID()), nil
}

// GetBehavior возвращает поведение для блока
func (b *Block) GetBehavior() (block.BlockBehavior, bool) {
	return block.Get(b.ID)
}

// Break выполняет разрушение блока: вызывает OnBreak поведения и
// помечает блок разрушенным. Повторный вызов ничего не делает.
func (b *Block) Break(api block.API) {
	if b.Broken {
		return
	}
	if behavior, exists := b.GetBehavior(); exists {
		behavior.OnBreak(api, b.Position)
	}
	b.Broken = true
}

// Clone создаёт копию блока с тем же идентификатором экземпляра
func (b *Block) Clone() *Block {
	newPayload := make(map[string]interface{}, len(b.Payload))
	for k, v := range b.Payload {
		newPayload[k] = v
	}

	return &Block{
		Instance: b.Instance,
		ID:       b.ID,
		Position: b.Position,
		Broken:   b.Broken,
		Payload:  newPayload,
	}
}
