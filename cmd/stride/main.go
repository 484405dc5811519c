package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/stride"
	"github.com/oomph-ac/stride/movement"
	"github.com/oomph-ac/stride/settings"
	"github.com/oomph-ac/stride/utils"
	"github.com/oomph-ac/stride/world"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "stride.yaml", "path of the movement settings file, created with defaults if missing")
	ticks      = flag.Int("ticks", 600, "amount of ticks to simulate")
	rate       = flag.Duration("rate", stride.DefaultTickRate, "interval between two ticks")
	realtime   = flag.Bool("realtime", false, "wait for the tick interval between ticks")
	debug      = flag.Bool("debug", false, "log movement debug output")
)

// The following program runs a single entity through a scripted parkour course and logs every mode
// switch it makes.
func main() {
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true, TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true}
	log.Level = logrus.InfoLevel
	if *debug {
		log.Level = logrus.DebugLevel
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to init sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 2)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	s, err := readSettings(*configPath)
	if err != nil {
		log.Fatalf("unable to read settings: %v", err)
	}

	w := world.New(log)
	buildCourse(w)

	sim := stride.New(stride.Config{Log: log, World: w, TickRate: *rate})
	defer sim.Close()

	e, err := sim.Spawn(stride.EntityConfig{
		Name:     "runner",
		Location: mgl32.Vec3{0, 0, 150},
		Settings: s,
		Handler:  logHandler{log: log.WithField("entity", "runner")},
		Debugger: movement.Debugger{
			LogTransitions: *debug,
			LogMantle:      *debug,
			LogLanding:     *debug,
		},
	})
	if err != nil {
		log.Fatalf("unable to spawn entity: %v", err)
	}

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(*rate)
		defer ticker.Stop()
	}
	dt := float32(rate.Seconds())
	for i := 0; i < *ticks; i++ {
		if ticker != nil {
			<-ticker.C
		}
		e.Apply(inputAt(course, i))
		sim.Tick(dt)
	}

	snap := e.Snapshot()
	log.Infof("finished %d ticks: %s", snap.Tick, utils.OrderedMapToString(utils.KeyValsToMap(
		"mode", snap.Mode,
		"location", snap.Location,
		"velocity", snap.Velocity,
		"jumps", snap.JumpCharges,
		"dashes", snap.DashCharges,
		"stamina", snap.RunningStamina,
	)))
}

// readSettings loads the settings file at the path passed, creating it with the default settings
// first if it does not exist.
func readSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

// logHandler logs every mode switch of an entity.
type logHandler struct {
	log *logrus.Entry
}

func (logHandler) HandleExit(*movement.Controller, movement.Mode) {}

func (h logHandler) HandleEnter(c *movement.Controller, mode movement.Mode) {
	st := c.State()
	h.log.Infof("%v -> %v at %v", st.Previous, mode, c.Body().Location())
}
