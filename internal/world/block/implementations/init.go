// Package implementations содержит реализации поведений всех типов блоков.
// Каждый файл регистрирует своё поведение в регистре через init(),
// поэтому достаточно импортировать пакет с пустым идентификатором:
//
//	import _ "github.com/annel0/voxel-world/internal/world/block/implementations"
package implementations
