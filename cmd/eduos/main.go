// Command eduos runs a scenario file against the kernel: it wires up the
// simulated hardware, admits every configured program, and switches on.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/eduos/kernel/internal/display"
	"github.com/eduos/kernel/internal/hardware"
	"github.com/eduos/kernel/internal/kernel"
	"github.com/eduos/kernel/internal/scenario"
	"github.com/eduos/kernel/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eduos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file")
	verbose := flag.Bool("verbose", false, "print a colorized per-tick trace")
	flag.Parse()

	if *scenarioPath == "" {
		return fmt.Errorf("eduos: -scenario is required")
	}

	f, err := os.Open(*scenarioPath)
	if err != nil {
		return fmt.Errorf("eduos: %w", err)
	}
	defer f.Close()

	cfg, err := scenario.Load(f)
	if err != nil {
		return err
	}

	programs, err := cfg.CompilePrograms()
	if err != nil {
		return err
	}

	machine := hardware.NewMachine(hardware.Config{
		MemorySize: cfg.MemorySize,
		FrameSize:  cfg.FrameSize,
		IOBurst:    cfg.IOBurst,
	})

	newScheduler, err := scheduler.New(scheduler.Variant(cfg.Scheduler), machine.Timer(), cfg.Quantum)
	if err != nil {
		return err
	}

	stop := kernel.StopFunc(func(int) bool { return false })
	if cfg.GanttStop > 0 {
		stop = kernel.StopAtTick(cfg.GanttStop)
	}

	fs := kernel.NewFileSystem()
	k := kernel.New(machine, newScheduler, fs, stop)

	for path, prg := range programs {
		fs.Write(path, prg)
	}
	for _, spec := range cfg.Programs {
		k.Run(spec.Path, spec.Priority)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	var bar *progressbar.ProgressBar
	if interactive && !*verbose {
		bar = progressbar.Default(-1, "ticking")
	}

	for k.AnyAlive() {
		machine.Tick()
		if bar != nil {
			bar.Add(1)
		}
		if *verbose {
			rows := k.Gantt().Rows()
			if len(rows) > 0 {
				fmt.Println(display.TraceRow(machine.Clock().CurrentTick()-1, rows[len(rows)-1]))
			}
		}
	}
	if bar != nil {
		bar.Finish()
	}

	slog.Info("eduos: scenario complete", "ticks", machine.Clock().CurrentTick())
	fmt.Println(k.Gantt().Render())
	return nil
}
