package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/misterlister/Creature-Summoner-sub000/internal/content"
	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine"
	"github.com/misterlister/Creature-Summoner-sub000/internal/version"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/api"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"
)

func init() {
	logger.Init()
}

// result is what -out receives: the summary, the decisions and the final board.
type result struct {
	Version string                `json:"version"`
	Summary engine.Summary        `json:"summary"`
	Replay  *domain.ReplaySession `json:"replay"`
	Final   *api.BattleView       `json:"final"`
}

func main() {
	var (
		contentDir   string
		scenarioPath string
		seed         int64
		outPath      string
		rounds       int
	)
	flag.StringVar(&contentDir, "content", "assets/content", "Directory with elements.yaml, terrain.yaml and actions.yaml")
	flag.StringVar(&scenarioPath, "scenario", "assets/scenarios/ember_pass.yaml", "Scenario file")
	flag.Int64Var(&seed, "seed", 0, "Battle seed (0 keeps the scenario seed, or a random one)")
	flag.StringVar(&outPath, "out", "", "Write the battle result as JSON to this path")
	flag.IntVar(&rounds, "rounds", 0, "Round cap (0 keeps the scenario value)")
	flag.Parse()

	logger.Log.Info(version.String())

	lib, err := content.LoadLibrary(contentDir)
	if err != nil {
		logger.Log.Fatal("Failed to load content: ", err)
	}
	sc, err := content.LoadScenario(scenarioPath)
	if err != nil {
		logger.Log.Fatal("Failed to load scenario: ", err)
	}

	cfg := sc.Config()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using seed: %d", cfg.Seed)
	}
	if rounds > 0 {
		cfg.MaxRounds = rounds
	}

	battle, err := lib.Build(sc, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to build battle: ", err)
	}

	// Ctrl+C stops the battle after the current turn.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Log.Info("Stopping after the current turn...")
		cancel()
	}()

	printer := engine.PresenterFunc(func(_ context.Context, r engine.Report) error {
		for _, line := range r.Lines() {
			fmt.Printf("[round %d] %s\n", r.Round, line)
		}
		return nil
	})

	sum, runErr := battle.Run(ctx, engine.FirstLegalController{}, printer)
	if runErr != nil {
		logger.Log.Error("Battle stopped: ", runErr)
	} else {
		fmt.Printf("Winner: %s after %d rounds\n", sum.Winner, sum.Rounds)
	}

	if outPath != "" {
		out := result{
			Version: version.Get().Version,
			Summary: sum,
			Replay:  battle.Replay,
			Final:   battle.BuildState("RESULT"),
		}
		if err := writeJSON(outPath, out); err != nil {
			logger.Log.Fatal("Failed to write result: ", err)
		}
		logger.Log.Infof("Result written to %s", outPath)
	}

	if runErr != nil {
		os.Exit(1)
	}
}

func writeJSON(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
