package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tickworks/segclock/driver"
	"github.com/tickworks/segclock/sampling"
	"github.com/tickworks/segclock/sim"
	"github.com/tickworks/segclock/simulation"
)

var runFlags = struct {
	tickRate        float64
	ticksPerSecond  int
	ticksPerRefresh int
	seconds         float64
	ticks           uint64
	sampleEvery     uint64
	output          string
	monitor         bool
	monitorPort     int
	openDashboard   bool
	logEvents       bool
	uniqueEventIDs  bool
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the clock for a stretch of simulated time",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runClock()
	},
}

func init() {
	f := runCmd.Flags()

	f.Float64Var(&runFlags.tickRate, "tick-rate",
		float64(driver.RefTickRate),
		"base tick rate of the shared time base, in Hz")
	f.IntVar(&runFlags.ticksPerSecond, "ticks-per-second",
		driver.RefTicksPerSecond,
		"ticks per seconds pulse")
	f.IntVar(&runFlags.ticksPerRefresh, "ticks-per-refresh",
		driver.RefTicksPerRefresh,
		"ticks per display refresh pulse")
	f.Float64Var(&runFlags.seconds, "seconds", 1.0,
		"simulated run length in seconds")
	f.Uint64Var(&runFlags.ticks, "ticks", 0,
		"simulated run length in ticks, overrides --seconds when set")
	f.Uint64Var(&runFlags.sampleEvery, "sample-every",
		envUint("SEGCLOCK_SAMPLE_EVERY", 1000),
		"record every Nth display frame")
	f.StringVar(&runFlags.output, "output",
		os.Getenv("SEGCLOCK_OUTPUT"),
		"name of the output SQLite file")
	f.BoolVar(&runFlags.monitor, "monitor", false,
		"start the monitoring server")
	f.IntVar(&runFlags.monitorPort, "monitor-port",
		int(envUint("SEGCLOCK_MONITOR_PORT", 0)),
		"port of the monitoring server, 0 picks a random port")
	f.BoolVar(&runFlags.openDashboard, "open-dashboard", false,
		"open the monitoring page in the default browser")
	f.BoolVar(&runFlags.logEvents, "log-events", false,
		"log every handled event to stdout")
	f.BoolVar(&runFlags.uniqueEventIDs, "unique-event-ids", false,
		"use globally unique event IDs instead of sequential ones")

	rootCmd.AddCommand(runCmd)
}

func envUint(name string, fallback uint64) uint64 {
	value, exist := os.LookupEnv(name)
	if !exist {
		return fallback
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %v\n", name, value, err)
		return fallback
	}

	return parsed
}

func runClock() error {
	ticks := runFlags.ticks
	if ticks == 0 {
		ticks = uint64(runFlags.seconds * runFlags.tickRate)
	}
	if ticks == 0 {
		return fmt.Errorf("run length is zero, set --seconds or --ticks")
	}

	builder := simulation.MakeBuilder().
		WithOutputFileName(runFlags.output)
	if !runFlags.monitor {
		builder = builder.WithoutMonitoring()
	} else if runFlags.monitorPort > 0 {
		builder = builder.WithMonitorPort(runFlags.monitorPort)
	}
	if runFlags.uniqueEventIDs {
		builder = builder.WithUniqueEventIDs()
	}

	s := builder.Build()
	defer s.Terminate()

	if runFlags.logEvents {
		s.GetEngine().AcceptHook(sim.NewEventLogger(log.New(os.Stdout, "", 0)))
	}

	clock := driver.MakeBuilder().
		WithEngine(s.GetEngine()).
		WithFreq(sim.Freq(runFlags.tickRate)).
		WithTicksPerSecond(runFlags.ticksPerSecond).
		WithTicksPerRefresh(runFlags.ticksPerRefresh).
		WithTickBudget(ticks).
		Build("Clock")
	s.RegisterClock(clock)

	sampler := sampling.NewRecorderSampler(
		s.GetDataRecorder(), "frames", runFlags.sampleEvery)
	clock.AcceptHook(sampler)

	if runFlags.monitor && runFlags.openDashboard {
		s.GetMonitor().OpenDashboard()
	}

	clock.TickLater()
	err := s.GetEngine().Run()
	if err != nil {
		return err
	}
	s.GetEngine().Finished()

	fmt.Printf("ran %d ticks, display %02d:%02d, digits %v\n",
		clock.TicksRun(), clock.Minutes(), clock.Seconds(), clock.Digits())

	return nil
}
