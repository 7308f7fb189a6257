package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-shadercam/pkg/config"
	"github.com/leterax/go-shadercam/pkg/network"
	"github.com/leterax/go-shadercam/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", config.DefaultFilename, "Path to the YAML config file")
	broadcastAddr := flag.String("broadcast", "", "Address to publish the camera pose on (empty to disable)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = func() {
		log.SetFlags(0)
		log.Printf("usage: %s [flags] [fragment shader]", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The first argument overrides the fragment shader
	if flag.NArg() > 0 {
		cfg.Shaders.Fragment = flag.Arg(0)
	}
	if *broadcastAddr != "" {
		cfg.Broadcast.Addr = *broadcastAddr
	}

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	if cfg.Broadcast.Addr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := network.NewHub()
		renderer.SetPoseHub(hub)
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.Broadcast.Addr); err != nil {
				slog.Error("pose broadcast stopped", "error", err)
			}
		}()
	}

	renderer.Run()
}
