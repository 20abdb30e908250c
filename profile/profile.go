package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler writes the profiles enabled in its [Config] around a single run
// of the program.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start starts CPU profiling if enabled and applies the memory profile rate
// if a heap profile was requested.
func (p *Profiler) Start() error {
	if p.HeapProfile != "" && p.MemProfileRate > 0 {
		runtime.MemProfileRate = p.MemProfileRate
	}

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("start CPU profile: %w", err), f.Close())
	}

	p.cpuFile = f

	slog.Debug("started CPU profile", slog.String("path", p.CPUProfile))

	return nil
}

// Stop stops CPU profiling and writes the heap profile if enabled. It is
// safe to call Stop without a prior successful [Profiler.Start].
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close CPU profile: %w", err))
		}

		p.cpuFile = nil
	}

	if p.HeapProfile != "" {
		err := writeHeap(p.HeapProfile)
		if err != nil {
			errs = append(errs, err)
		} else {
			slog.Debug("wrote heap profile", slog.String("path", p.HeapProfile))
		}
	}

	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}

	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("write heap profile: %w", err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close heap profile: %w", err)
	}

	return nil
}
