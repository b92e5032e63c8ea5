package block_test

import (
	"testing"

	"github.com/annel0/voxel-world/internal/world/block"
	// Импортируем реализации блоков для регистрации в init()
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

func TestRegistryGet(t *testing.T) {
	behavior, exists := block.Get(block.StoneBlockID)
	if !exists {
		t.Fatal("Поведение камня должно быть зарегистрировано")
	}

	if behavior.ID() != block.StoneBlockID {
		t.Errorf("Ожидался ID %d, получен %d", block.StoneBlockID, behavior.ID())
	}
	if behavior.Name() != "stone" {
		t.Errorf("Ожидалось имя 'stone', получено %q", behavior.Name())
	}
}

func TestRegistryByName(t *testing.T) {
	names := []string{"air", "stone", "grass", "water", "sand", "dirt", "tree"}

	for _, name := range names {
		behavior, exists := block.ByName(name)
		if !exists {
			t.Errorf("Тип %q должен быть зарегистрирован", name)
			continue
		}
		if behavior.Name() != name {
			t.Errorf("Имя поведения не совпадает: %q != %q", behavior.Name(), name)
		}
	}
}

func TestRegistryUnknownName(t *testing.T) {
	_, exists := block.ByName("bedrock")
	if exists {
		t.Error("Незарегистрированный тип не должен находиться по имени")
	}
}

func TestIsValidBlockID(t *testing.T) {
	if !block.IsValidBlockID(block.DirtBlockID) {
		t.Error("DirtBlockID должен быть допустимым")
	}
	if block.IsValidBlockID(block.BlockID(9999)) {
		t.Error("Незарегистрированный ID не должен быть допустимым")
	}
}

func TestSolidity(t *testing.T) {
	solid := map[string]bool{
		"air":   false,
		"water": false,
		"stone": true,
		"dirt":  true,
		"grass": true,
		"sand":  true,
		"tree":  true,
	}

	for name, want := range solid {
		behavior, exists := block.ByName(name)
		if !exists {
			t.Fatalf("Тип %q не зарегистрирован", name)
		}
		if behavior.Solid() != want {
			t.Errorf("Solid(%q): ожидалось %v, получено %v", name, want, behavior.Solid())
		}
	}
}
