package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/richinsley/gobezier/blit"
	"github.com/richinsley/gobezier/canvas"
	"github.com/richinsley/gobezier/glfwcontext"
	"github.com/richinsley/gobezier/logging"
	"github.com/richinsley/gobezier/options"
	"github.com/richinsley/gobezier/renderer"
	"github.com/richinsley/gobezier/scene"
	"github.com/richinsley/gobezier/script"
)

func runInteractive(ctx context.Context, cfg options.Config, s *scene.Scene, c *canvas.Canvas) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	win, err := glfwcontext.New(cfg.Window)
	if err != nil {
		return err
	}
	win.MakeCurrent()

	p, err := blit.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		win.Shutdown()
		return err
	}

	r := renderer.NewRenderer(win, p, c, s)
	defer r.Shutdown()
	return r.Run(ctx)
}

func runRecord(opts *options.EditorOptions, s *scene.Scene, c *canvas.Canvas) error {
	src, err := script.Parse(nil)
	if *opts.ScriptFile != "" {
		src, err = script.Load(*opts.ScriptFile)
	}
	if err != nil {
		return err
	}
	logging.Logger().Info("loaded event script", "events", src.Len())

	or := renderer.NewOffscreenRenderer(c, s)
	if err := or.RunOffscreen(opts, src); err != nil {
		return err
	}
	log.Printf("Successfully rendered to %s", *opts.OutputFile)
	return nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.EditorOptions{
		ConfigFile: flag.String("config", "", "Path to a TOML config file"),
		Help:       flag.Bool("help", false, "Show help message"),
		Verbose:    flag.Bool("v", false, "Enable debug logging"),
		Mode:       flag.String("mode", "interactive", "Run mode: 'interactive' or 'record'"),
		Title:      flag.String("title", "", "Window title (overrides config)"),
		Width:      flag.Int("width", 0, "Canvas width (overrides config)"),
		Height:     flag.Int("height", 0, "Canvas height (overrides config)"),
		Selection:  flag.String("selection", "", "Selection policy: 'all' or 'nearest' (overrides config)"),
		Snap:       flag.String("snap", "", "Pixel snapping: 'round' or 'truncate' (overrides config)"),
		Adaptive:   flag.Bool("adaptive", false, "Sample each curve by its length instead of a fixed step"),
		Screenshot: flag.String("screenshot", "", "Save the last frame as PNG on exit"),

		ScriptFile: flag.String("script", "", "TOML event script for record mode"),
		Duration:   flag.Float64("duration", 5.0, "Duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		OutputFile: flag.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:      flag.String("codec", "h264", "Video codec for recording: 'h264' or 'hevc'"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("Bezier curve editor")
		flag.PrintDefaults()
		return
	}

	level := slog.LevelInfo
	if *opts.Verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := options.Load(*opts.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	opts.Apply(&cfg)

	s, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	c, err := canvas.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *opts.Mode {
	case "interactive":
		err = runInteractive(ctx, cfg, s, c)
	case "record":
		err = runRecord(opts, s, c)
	default:
		err = fmt.Errorf("unknown mode %q", *opts.Mode)
	}
	if err != nil {
		log.Fatalf("%s mode failed: %v", *opts.Mode, err)
	}

	if *opts.Screenshot != "" {
		if err := c.SavePNG(*opts.Screenshot); err != nil {
			log.Fatalf("Failed to save screenshot: %v", err)
		}
		log.Printf("Saved last frame to %s", *opts.Screenshot)
	}
}
