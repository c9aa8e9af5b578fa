/*
antsim runs a deterministic ant-colony match: a hex board of rock, food
and anthills, two colonies' instruction programs, stepped
forward round by round. By default it serves a live board view over
http; with -serve=false it dumps the board to the console instead.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aochagavia/FastAnts/internal/antworld"
	"github.com/aochagavia/FastAnts/internal/boarddump"
	"github.com/aochagavia/FastAnts/internal/config"
	"github.com/aochagavia/FastAnts/internal/instruction"
	"github.com/aochagavia/FastAnts/internal/program"
	"github.com/aochagavia/FastAnts/internal/runner"
	"github.com/aochagavia/FastAnts/internal/simulator"
	"github.com/aochagavia/FastAnts/server"
	"github.com/aochagavia/FastAnts/server/boardviews"
)

var (
	worldPath    *string
	redPath      *string
	blackPath    *string
	configPath   *string
	serve        *bool
	addr         *string
	rounds       *uint
	seed         *uint
	tickInterval *string
)

func init() {
	worldPath = flag.String("world", "", "path to a world file; uses the built-in demo board if empty")
	redPath = flag.String("red", "", "path to red's instruction program; uses the built-in demo program if empty")
	blackPath = flag.String("black", "", "path to black's instruction program; uses the built-in demo program if empty")
	configPath = flag.String("config", "", "path to a run config yaml; overrides -rounds/-seed/-addr/-tick when set")
	serve = flag.Bool("serve", true, "serve a live board view over http instead of dumping to the console")
	addr = flag.String("addr", ":8080", "http listen address when -serve is set")
	rounds = flag.Uint("rounds", 2000, "number of rounds to run before exiting (console mode) or as MaxRounds (serve mode)")
	seed = flag.Uint("seed", 12345, "PRNG seed")
	tickInterval = flag.String("tick", "100ms", "time between rounds in serve mode")
	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := &config.RunConfig{
		MaxRounds:    uint32(*rounds),
		Seed:         uint32(*seed),
		TickInterval: *tickInterval,
		ServeAddr:    *addr,
	}
	if *configPath != "" {
		loaded, err := config.FromYaml(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	world, err := loadWorld(*worldPath)
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	red, err := loadProgram(*redPath)
	if err != nil {
		return fmt.Errorf("loading red program: %w", err)
	}
	black, err := loadProgram(*blackPath)
	if err != nil {
		return fmt.Errorf("loading black program: %w", err)
	}

	sim := simulator.New(world, red, black, cfg.MaxRounds, cfg.Seed)

	ctx, cancel, err := cfg.WithDeadline(context.Background())
	if err != nil {
		return fmt.Errorf("parsing deadline: %w", err)
	}
	defer cancel()

	if !*serve {
		return runConsole(sim)
	}

	return runServer(ctx, sim, cfg)
}

func loadWorld(path string) (*antworld.World, error) {
	if path == "" {
		return antworld.Parse(strings.NewReader(demoWorld))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return antworld.Parse(f)
}

func loadProgram(path string) ([]instruction.Instruction, error) {
	if path == "" {
		return program.Parse(strings.NewReader(demoProgram))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return program.Parse(f)
}

// runConsole steps the simulator to completion (or cfg.MaxRounds),
// printing the board and scoreboard on every tenth of the run.
func runConsole(sim *simulator.Simulator) error {
	checkpoint := sim.MaxRounds / 10
	if checkpoint == 0 {
		checkpoint = 1
	}

	for sim.Round < sim.MaxRounds {
		sim.OneRound()
		if sim.Round%checkpoint == 0 {
			boarddump.ShowGrid(os.Stdout, sim.World)
			boarddump.ShowOutcome(os.Stdout, sim.PartialOutcome())
			fmt.Println()
		}
	}

	boarddump.ShowGrid(os.Stdout, sim.World)
	boarddump.ShowOutcome(os.Stdout, sim.PartialOutcome())
	return nil
}

// runServer starts the runner and serves the live view until ctx ends.
// The initial page render uses the pre-tick (round 0) state directly off
// sim; the runner's Snapshots channel is left untouched for the server's
// own websocket fan-out to consume exclusively.
func runServer(ctx context.Context, sim *simulator.Simulator, cfg *config.RunConfig) error {
	initial := runner.Snapshot{
		Cells:   boardviews.Convert(sim.World),
		Outcome: sim.PartialOutcome(),
	}

	run := runner.New(ctx, sim, cfg.Tick())

	srv := server.NewServer(ctx, cfg.ServeAddr, run, initial)
	fmt.Printf("serving on %s\n", cfg.ServeAddr)
	return srv.Serve()
}
