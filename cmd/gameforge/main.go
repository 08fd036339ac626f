// Command gameforge mass-produces no-guess-solvable Minesweeper
// boards per a game_forge.yaml configuration file and streams them to
// CSV, showing a live dashboard while it runs.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mossforge/game-forge/internal/config"
	"github.com/mossforge/game-forge/internal/dashboard"
	"github.com/mossforge/game-forge/internal/driver"
	"github.com/mossforge/game-forge/internal/minesweeper"
	"github.com/mossforge/game-forge/internal/module"
	"github.com/mossforge/game-forge/internal/signals"
)

func main() {
	path := "game_forge.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game-forge: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signals.WithInterrupt(context.Background())
	defer stop()

	// Wrapped so the dashboard's own Ctrl-C handling can trigger the same
	// interrupt a real SIGINT would: inside tea.WithAltScreen() the tty
	// is in raw mode, so a keyboard Ctrl-C arrives as a tea.KeyMsg and
	// never reaches os/signal.Notify on its own.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	registry := module.Registry{
		"minesweeper": minesweeper.Engine{},
	}
	drv := driver.New(registry, cfg.Threads)

	runDone := make(chan struct{})
	go func() {
		drv.Run(ctx, cfg)
		close(runDone)
	}()

	p := tea.NewProgram(dashboard.New(drv, cancel), tea.WithAltScreen(), tea.WithFPS(30))
	go func() {
		<-runDone
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "game-forge: %v\n", err)
		os.Exit(1)
	}

	// Quitting the dashboard early doesn't stop generation: block
	// until the driver has actually finished every difficulty.
	<-runDone
}
