// Command demo runs a toy simulation loop against the admission gate: it
// spawns short-lived "item" entities every tick, asks the gate which of
// them may be processed, and feeds measured frame times back into the
// controller. It stands in for the game server that would normally host
// the gate.
package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/tickgate/pkg/tickgate"
	"github.com/yourusername/tickgate/reporter"
)

type item struct {
	id        tickgate.EntityID
	despawnAt uint64
}

func main() {
	configFile := flag.String("config", "tickgate.yaml", "Path to configuration file")
	addr := flag.String("addr", ":8080", "Address for the /stats endpoint")
	tickEvery := flag.Duration("tick", 50*time.Millisecond, "Wall-clock duration of one tick")
	spawnPerTick := flag.Int("spawn", 30, "Items spawned per tick")
	workPerItem := flag.Duration("work", 200*time.Microsecond, "Simulated cost of processing one item")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	config, err := tickgate.LoadOrCreateConfig(*configFile)
	if err != nil {
		log.Warnf("config %s unusable (%v), falling back to defaults", *configFile, err)
		config = tickgate.NewConfig()
	}
	config.Debug = true

	gate, err := tickgate.New(tickgate.WithConfig(config))
	if err != nil {
		log.Fatalf("failed to create gate: %v", err)
	}
	log.Infof("gate ready: enabled=%v, target=%dms, quota=%d, cooldown=%d",
		gate.Enabled(), config.TargetTickMs, gate.MaxPerTick(), gate.CooldownTicks())

	// Everything that touches the gate funnels through this queue, which
	// only the simulation loop below drains.
	jobs := make(chan func(), 64)
	schedule := func(fn func()) { jobs <- fn }

	stopReporter := reporter.New(gate, schedule,
		reporter.WithLogger(log),
	).Start()
	defer stopReporter()

	http.HandleFunc("/stats", statsHandler(gate, schedule))
	go func() {
		log.Infof("stats endpoint on http://localhost%s/stats", *addr)
		if err := http.ListenAndServe(*addr, nil); err != nil {
			log.Errorf("stats server: %v", err)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	var (
		items  []item
		nextID tickgate.EntityID
		tick   uint64
	)
	ticker := time.NewTicker(*tickEvery)
	defer ticker.Stop()

	log.Infof("simulation running: %d items/tick, %v/item, ctrl-c to stop", *spawnPerTick, *workPerItem)
	for {
		select {
		case <-interrupt:
			log.Infof("shutting down: %d items live, %d tracked", len(items), gate.Tracked())
			return
		case <-ticker.C:
		}

		tick++
		start := time.Now()

		// Out-of-band work handed to the simulation goroutine.
		for {
			select {
			case fn := <-jobs:
				fn()
				continue
			default:
			}
			break
		}

		for i := 0; i < *spawnPerTick; i++ {
			nextID++
			items = append(items, item{
				id:        nextID,
				despawnAt: tick + uint64(20+rand.Intn(200)),
			})
		}

		live := items[:0]
		for _, it := range items {
			if tick >= it.despawnAt {
				gate.OnEntityDestroyed(it.id)
				continue
			}
			live = append(live, it)
			if gate.CheckAdmission(it.id, tick).Allowed() {
				simulateWork(*workPerItem)
			}
		}
		items = live

		gate.OnFrameEnd(time.Since(start))
	}
}

// statsHandler serves the gate snapshot as JSON. The gate is owned by the
// simulation goroutine, so the handler round-trips the read through the
// scheduler instead of touching the gate directly.
func statsHandler(gate *tickgate.Gate, schedule reporter.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := make(chan tickgate.Snapshot, 1)
		schedule(func() {
			result <- gate.Snapshot()
		})

		select {
		case snap := <-result:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(snap)
		case <-time.After(2 * time.Second):
			http.Error(w, "simulation loop not responding", http.StatusServiceUnavailable)
		}
	}
}

// simulateWork burns roughly d of CPU to stand in for an entity's tick.
func simulateWork(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
