package util

import (
	"github.com/aquilax/go-perlin"
)

// Noise обёртка над шумом Перлина для генерации ландшафта.
// Каждый генератор мира держит собственный экземпляр, привязанный к сиду.
type Noise struct {
	p *perlin.Perlin
}

// NewNoise создаёт генератор шума Перлина с указанным сидом
func NewNoise(seed int64) *Noise {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &Noise{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// At2D возвращает значение шума для указанных координат в диапазоне [0,1]
func (n *Noise) At2D(x, y float64) float64 {
	// Noise2D отдаёт значение от -1 до 1
	return (n.p.Noise2D(x, y) + 1.0) / 2.0
}
