package bootstrap

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/attraction"
	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/config"
	"github.com/grapnel-games/tablet-tycoon/internal/conversion"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/metrics"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
	"github.com/grapnel-games/tablet-tycoon/internal/sse"
	"github.com/grapnel-games/tablet-tycoon/internal/validation"
)

// Game holds every assembled game component.
type Game struct {
	Catalog  *catalog.Catalog
	Bus      event.Bus
	Ledger   *ledger.Ledger
	Roller   *roll.Engine
	Boosts   *gameevent.Manager
	Convert  *conversion.Engine
	Truck    *attraction.Truck
	Wheel    *attraction.Wheel
	Showroom *attraction.Showroom
	Hub      *sse.Hub
}

// BuildGame constructs the full component graph: catalog, event bus, ledger,
// roll engine, boost manager, conversion engine, attractions and the SSE hub.
// Recipes are loaded from cfg.RecipesPath.
func BuildGame(cfg *config.Config) (*Game, error) {
	cat := catalog.New()
	bus := event.NewMemoryBus()

	led := ledger.New(cat, bus, time.Now)
	roller := roll.New(cat, rand.Float64, time.Now)
	boosts := gameevent.NewManager(bus, rand.Float64, time.Now)

	schemaPath := strings.TrimSuffix(cfg.RecipesPath, ".json") + ".schema.json"
	if err := validation.NewSchemaValidator().ValidateFile(cfg.RecipesPath, schemaPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRecipes, err)
	}

	recipes, err := conversion.LoadRecipes(cfg.RecipesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRecipes, err)
	}
	slog.Info(LogMsgRecipesLoaded, "count", len(recipes), "path", cfg.RecipesPath)

	eng := conversion.NewEngine(cat, led, roller, boosts, bus, recipes, time.Now)

	game := &Game{
		Catalog:  cat,
		Bus:      bus,
		Ledger:   led,
		Roller:   roller,
		Boosts:   boosts,
		Convert:  eng,
		Truck:    attraction.NewTruck(cat, led, time.Now),
		Wheel:    attraction.NewWheel(cat, led, roller, boosts, rand.Float64, time.Now),
		Showroom: attraction.NewShowroom(led, roller, time.Now),
		Hub:      sse.NewHub(),
	}

	if err := RegisterEventHandlers(game); err != nil {
		return nil, err
	}

	slog.Info(LogMsgGameAssembled, "catalog_size", cat.Len())
	return game, nil
}

// RegisterEventHandlers attaches the metrics collector and the SSE stream
// subscriber to the event bus.
func RegisterEventHandlers(game *Game) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(game.Bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(game.Hub, game.Bus).Subscribe()
	slog.Info(LogMsgStreamSubscriberAttached)

	return nil
}
