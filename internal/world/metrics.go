package world

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus-метрики мутаций мира. Регистрируются в глобальном
// регистре при инициализации пакета.
var (
	blocksPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "terrain",
		Name:      "blocks_placed_total",
		Help:      "Общее число установленных блоков.",
	})
	blocksRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "terrain",
		Name:      "blocks_removed_total",
		Help:      "Общее число молча удалённых блоков.",
	})
	blocksBroken = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "terrain",
		Name:      "blocks_broken_total",
		Help:      "Общее число разрушенных блоков.",
	})
	meshRebuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "terrain",
		Name:      "mesh_rebuilds_total",
		Help:      "Общее число пересборок мешей чанков.",
	})
)

func init() {
	prometheus.MustRegister(blocksPlaced, blocksRemoved, blocksBroken, meshRebuilds)
}
