package block

import "errors"

// ErrUnknownBlockType возвращается фабрикой при неизвестном имени типа блока
var ErrUnknownBlockType = errors.New("unknown block type")

var (
	registry = make(map[BlockID]BlockBehavior)
	byName   = make(map[string]BlockBehavior)
)

// Register добавляет поведение блока в регистр.
// Поведение становится доступным и по ID, и по имени типа.
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
	byName[behavior.Name()] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// ByName возвращает поведение по имени типа блока
func ByName(name string) (BlockBehavior, bool) {
	behavior, exists := byName[name]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	GrassBlockID                // 2
	WaterBlockID                // 3
	SandBlockID                 // 4
	DirtBlockID                 // 5

	// Для возможности расширения оставляем промежутки между категориями

	// Декоративные блоки (начиная с 100)
	TreeBlockID BlockID = 101 // Дерево
)
