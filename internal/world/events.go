package world

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
)

// Типы событий мутаций мира
const (
	EventTypeBlockPlaced  = "block_placed"
	EventTypeBlockRemoved = "block_removed"
	EventTypeBlockBroken  = "block_broken"
)

// BlockEventPayload — полезная нагрузка события мутации блока
type BlockEventPayload struct {
	BlockType string   `json:"block_type"`
	Instance  string   `json:"instance"`
	Position  vec.Vec3 `json:"position"`
	Chunk     vec.Vec2 `json:"chunk"`
}

// publishBlockEvent публикует событие мутации в шину (если подключена).
// Ошибки публикации не прерывают мутацию: индексы уже обновлены.
func (t *Terrain) publishBlockEvent(eventType string, b *Block) {
	if t.bus == nil {
		return
	}

	typeName := "unknown"
	if behavior, ok := b.GetBehavior(); ok {
		typeName = behavior.Name()
	}

	payload, err := json.Marshal(BlockEventPayload{
		BlockType: typeName,
		Instance:  b.Instance.String(),
		Position:  b.Position,
		Chunk:     b.Position.ChunkCoords(),
	})
	if err != nil {
		logging.Error("Ошибка сериализации события %s: %v", eventType, err)
		return
	}

	envelope := &eventbus.Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    "terrain",
		EventType: eventType,
		Version:   1,
		Payload:   payload,
	}

	if err := t.bus.Publish(context.Background(), envelope); err != nil {
		logging.Warn("Ошибка публикации события %s: %v", eventType, err)
	}
}
