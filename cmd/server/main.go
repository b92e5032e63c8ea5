package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/world"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("world"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🌍 Запуск Voxel World Server...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{} // Конфиг не задан — используем дефолты
	}

	seed := cfg.World.GetSeed()
	radius := cfg.World.GetPregenRadius()
	metricsAddr := fmt.Sprintf(":%d", cfg.Server.GetMetricsPort())

	logging.Info("📡 Конфигурация: seed=%d, радиус предгенерации=%d, метрики=%s",
		seed, radius, metricsAddr)

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===

	// Шина событий мира + экспорт метрик
	bus := eventbus.NewMemoryBus(1024)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Error("Ошибка подписки логгера на шину: %v", err)
	}

	exporter := eventbus.NewMetricsExporter(bus)
	exporter.StartHTTP(metricsAddr)

	// Реестр мира
	terrain := world.NewTerrain()
	terrain.SetEventBus(bus)

	// Предгенерация ландшафта
	logging.Info("⛰️  Генерация мира (сид %d)...", seed)
	generator := world.NewWorldGenerator(seed)
	if cfg.World.NoiseScale > 0 {
		generator.NoiseScale = cfg.World.NoiseScale
	}
	if cfg.World.ForestDensity > 0 {
		generator.ForestDensity = cfg.World.ForestDensity
	}
	generator.Pregenerate(terrain, radius)

	// Первая сборка мешей всех чанков
	terrain.RebuildAllChunks()

	logging.Info("✅ Мир готов: %d чанков, %d блоков",
		terrain.ChunkCount(), terrain.BlockCount())

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Ждем сигнала для завершения
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	exporter.Stop()
	bus.Close()
	terrain.Close()

	logging.Info("👋 Сервер остановлен")
}
