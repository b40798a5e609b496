// eventbench runs a synthetic game world on a virtual clock and reports how
// fast the event processors drain.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/process"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/openrealm/eventcore/eventrec"
	"github.com/openrealm/eventcore/sched"
	"github.com/openrealm/eventcore/world"
)

var rootCmd = &cobra.Command{
	Use:   "eventbench",
	Short: "Run a synthetic game world on a virtual clock",
	Long: `eventbench builds a world full of units with periodic spell ` +
		`effects, AI decision timers, and respawn timers, then advances ` +
		`the virtual clock tick by tick as fast as the processors drain. ` +
		`Flag defaults can be placed in a .env file.`,
	RunE: run,
}

func init() {
	// Ignore a missing .env; flags fall back to their built-in defaults.
	_ = godotenv.Load()

	rootCmd.Flags().Int("units",
		envInt("EVENTBENCH_UNITS", 1000),
		"number of units in the world")
	rootCmd.Flags().Uint64("sim-seconds",
		envUint64("EVENTBENCH_SIM_SECONDS", 600),
		"simulated duration, in seconds of virtual time")
	rootCmd.Flags().Uint64("tick-ms",
		envUint64("EVENTBENCH_TICK_MS", 50),
		"virtual length of one world tick, in milliseconds")
	rootCmd.Flags().Int64("seed", 1, "random seed for the workload")
	rootCmd.Flags().String("trace", "",
		"record an event trace into this SQLite database")
}

// countingHook counts fired events across every processor it is attached
// to.
type countingHook struct {
	fired uint64
}

func (h *countingHook) Func(ctx sched.HookCtx) {
	if ctx.Pos == sched.HookPosAfterFire {
		h.fired++
	}
}

func run(cmd *cobra.Command, _ []string) error {
	units, _ := cmd.Flags().GetInt("units")
	simSeconds, _ := cmd.Flags().GetUint64("sim-seconds")
	tickMS, _ := cmd.Flags().GetUint64("tick-ms")
	seed, _ := cmd.Flags().GetInt64("seed")
	tracePath, _ := cmd.Flags().GetString("trace")

	rng := rand.New(rand.NewSource(seed))

	w := world.NewWorld()
	counter := &countingHook{}
	w.Events().AcceptHook(counter)

	var rec eventrec.Recorder
	if tracePath != "" {
		rec = eventrec.New(tracePath)
	}

	populate(w, units, rng, counter, rec)

	totalMS := simSeconds * 1000
	start := time.Now()
	for elapsed := uint64(0); elapsed < totalMS; elapsed += tickMS {
		w.Update(sched.VTimeInMS(tickMS))
	}
	wall := time.Since(start)

	w.Shutdown(true)

	fmt.Printf("simulated %d s of world time in %v\n", simSeconds, wall)
	fmt.Printf("events fired: %d (%.0f/s wall)\n",
		counter.fired, float64(counter.fired)/wall.Seconds())

	reportProcessStats()

	return nil
}

// populate fills the world with units carrying the three timer kinds the
// engine exists for: damage-over-time spells, AI decisions, and respawns.
func populate(
	w *world.World,
	units int,
	rng *rand.Rand,
	counter *countingHook,
	rec eventrec.Recorder,
) {
	for i := 0; i < units; i++ {
		u := world.NewUnit(fmt.Sprintf("unit-%05d", i), 100)
		w.AddUnit(u)

		u.Events().AcceptHook(counter)
		if rec != nil {
			u.Events().AcceptHook(eventrec.NewTraceHook(u.Events(), rec))
		}

		u.ApplySpellEffect(
			1+rng.Intn(5),
			sched.VTimeInMS(500+rng.Intn(4500)),
			10+rng.Intn(90),
		)
		u.StartAI(
			sched.VTimeInMS(250+rng.Intn(750)),
			func(owner *world.Unit, _ sched.VTimeInMS) {
				owner.Heal(1)
			},
		)

		// Every tenth unit starts the run dead, waiting on a respawn.
		if i%10 == 0 {
			u.ApplyDamage(u.MaxHealth)
			u.ScheduleRespawn(sched.VTimeInMS(1000 + rng.Intn(30000)))
		}
	}
}

func reportProcessStats() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	if cpu, err := proc.Times(); err == nil {
		fmt.Printf("cpu: %.2f s user, %.2f s system\n", cpu.User, cpu.System)
	}

	if mem, err := proc.MemoryInfo(); err == nil {
		fmt.Printf("rss: %d MiB\n", mem.RSS/(1024*1024))
	}
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return fallback
}

func envUint64(key string, fallback uint64) uint64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}

	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
