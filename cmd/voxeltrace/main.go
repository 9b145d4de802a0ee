package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lukaszgryglicki/voxeltrace/internal/voxeltrace"
)

func main() {
	voxeltrace.Debug = os.Getenv("DEBUG") != ""
	voxeltrace.PNG = os.Getenv("SKIP_PNG") == ""
	voxeltrace.GIF = os.Getenv("GIF") != ""
	voxeltrace.RAW = os.Getenv("RAW") != ""
	voxeltrace.Progress = os.Getenv("PROGRESS") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := voxeltrace.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
