package stride

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/stride/oerror"
	"github.com/oomph-ac/stride/worker"
	"github.com/oomph-ac/stride/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// DefaultTickRate is the rate Run ticks a Simulation at if no rate is configured.
const DefaultTickRate = time.Second / 60

// Config holds the configuration of a Simulation.
type Config struct {
	// Log is the logger of the simulation and every entity in it. A nil logger discards all output.
	Log *logrus.Logger
	// World is the world the entities move in. A nil world creates an empty one.
	World *world.World
	// Workers is the amount of entities ticked in parallel. Zero uses one worker per CPU.
	Workers int
	// TickRate is the interval between two ticks in Run.
	TickRate time.Duration
}

// Simulation hosts a set of entities sharing a world, ticking each of them on a worker pool.
type Simulation struct {
	log   *logrus.Logger
	world *world.World
	pool  *worker.Pool
	rate  time.Duration

	entityMu deadlock.RWMutex
	entities *orderedmap.OrderedMap[string, *Entity]

	// tickMu is held for the duration of a tick so that Close never closes the pool mid-tick.
	tickMu deadlock.Mutex
	ticks  atomic.Uint64
	closed atomic.Bool
}

// New creates a Simulation from the config passed. The simulation must be closed once it is no
// longer used.
func New(cfg Config) *Simulation {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.SetOutput(io.Discard)
	}
	if cfg.World == nil {
		cfg.World = world.New(cfg.Log)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	return &Simulation{
		log:      cfg.Log,
		world:    cfg.World,
		pool:     worker.New(cfg.Workers),
		rate:     cfg.TickRate,
		entities: orderedmap.NewOrderedMap[string, *Entity](),
	}
}

// World returns the world shared by every entity of the simulation.
func (s *Simulation) World() *world.World {
	return s.world
}

// Ticks returns the amount of ticks the simulation has run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks.Load()
}

// Spawn creates an entity and adds it to the simulation. Names must be unique.
func (s *Simulation) Spawn(cfg EntityConfig) (*Entity, error) {
	if s.closed.Load() {
		return nil, oerror.New("simulation closed")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("spawn %q: %w", cfg.Name, err)
	}

	s.entityMu.Lock()
	defer s.entityMu.Unlock()

	if _, ok := s.entities.Get(cfg.Name); ok {
		return nil, oerror.New("entity %q already exists", cfg.Name)
	}
	e := newEntity(cfg, s.world, s.log)
	s.entities.Set(cfg.Name, e)
	s.log.Debugf("simulation: spawned %q at %v", cfg.Name, cfg.Location)
	return e, nil
}

// Entity looks up an entity by its name.
func (s *Simulation) Entity(name string) (*Entity, bool) {
	s.entityMu.RLock()
	defer s.entityMu.RUnlock()
	return s.entities.Get(name)
}

// Entities returns every entity of the simulation in the order they were spawned.
func (s *Simulation) Entities() []*Entity {
	s.entityMu.RLock()
	defer s.entityMu.RUnlock()

	list := make([]*Entity, 0, s.entities.Len())
	for el := s.entities.Front(); el != nil; el = el.Next() {
		list = append(list, el.Value)
	}
	return list
}

// Remove removes an entity from the simulation. It returns false if no entity has the name passed.
func (s *Simulation) Remove(name string) bool {
	s.entityMu.Lock()
	defer s.entityMu.Unlock()

	if !s.entities.Delete(name) {
		return false
	}
	s.log.Debugf("simulation: removed %q", name)
	return true
}

// Tick advances every entity by dt seconds and blocks until all of them are done. Entities are
// ticked in parallel; an entity that panics is reported and skipped for the rest of the tick.
func (s *Simulation) Tick(dt float32) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	if s.closed.Load() {
		return
	}
	tick := s.ticks.Inc()

	var wg sync.WaitGroup
	for _, e := range s.Entities() {
		wg.Add(1)
		if !s.pool.Submit(func() {
			defer wg.Done()
			s.tickEntity(e, tick, dt)
		}) {
			wg.Done()
		}
	}
	wg.Wait()
}

func (s *Simulation) tickEntity(e *Entity, tick uint64, dt float32) {
	defer func() {
		if err := recover(); err != nil {
			s.log.Errorf("entity %q panicked on tick %d: %v", e.name, tick, err)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("entity", e.name)
				scope.SetTag("mode", e.Snapshot().Mode.String())
			})

			hub.Recover(oerror.New("%v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	e.tick(tick, dt)
}

// Run ticks the simulation at its tick rate until the context is cancelled or the simulation is
// closed.
func (s *Simulation) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.rate)
	defer ticker.Stop()

	dt := float32(s.rate.Seconds())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.closed.Load() {
				return oerror.New("simulation closed")
			}
			s.Tick(dt)
		}
	}
}

// Close closes the simulation, waiting for a running tick to finish.
func (s *Simulation) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return oerror.New("simulation already closed")
	}
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	s.pool.Close()
	return nil
}
