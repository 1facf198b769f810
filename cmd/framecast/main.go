// Package main provides the CLI entry point for framecast.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/adapters/noisegen"
	"github.com/user/framecast/pkg/adapters/shapesim"
	"github.com/user/framecast/pkg/adapters/videoloop"
	"github.com/user/framecast/pkg/config"
	"github.com/user/framecast/pkg/encoding"
	"github.com/user/framecast/pkg/framestore"
	"github.com/user/framecast/pkg/palette"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/publisher"
	"github.com/user/framecast/pkg/rotator"
	"github.com/user/framecast/pkg/server"
)

// Mode labels in rotation order.
const (
	modeVideo      = "video_streaming"
	modeShapes     = "bouncing_shapes"
	modeColorNoise = "random_color_noise"
	modeGrayNoise  = "random_gray_noise"
	modeBWNoise    = "random_bw_noise"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the frame streaming HTTP server."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// ServeCmd defines the serve subcommand.
type ServeCmd struct {
	Config string `short:"c" help:"YAML configuration file path."`

	// Overrides on top of the config file
	Listen    *string `help:"Listen address (default: :8000)."`
	Width     *int    `short:"W" help:"Frame width in pixels (default: 200)."`
	Height    *int    `short:"H" help:"Frame height in pixels (default: 150)."`
	ChunkSize *int    `help:"Maximum chunk length in bytes (default: 4000)."`
	VideoPath *string `help:"Path to the looping MP4 source (default: video.mp4)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framecast"),
		kong.Description("Stream synthetic video frames over a pull-based HTTP chunk protocol."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the serve command.
func (cmd *ServeCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()

	producers := buildProducers(cfg, log)

	cache := palette.NewCache(cfg.MaxPalettes)
	store := framestore.New(cfg.MaxFrames)
	pub := publisher.New(store, encoding.Suite(cache), cfg.ChunkSize, log)
	rot := rotator.New(producers, cfg.RotationInterval(), modeVideo)
	srv := server.New(cfg.Listen, pub, rot, store, log)

	log.Info("Available modes: %s", strings.Join(rot.Labels(), ", "))

	return srv.ListenAndServe(ctx)
}

// buildConfig loads the config file (when given) and applies CLI overrides.
func (cmd *ServeCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Listen != nil {
		cfg.Listen = *cmd.Listen
	}
	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.Height = *cmd.Height
	}
	if cmd.ChunkSize != nil {
		cfg.ChunkSize = *cmd.ChunkSize
	}
	if cmd.VideoPath != nil {
		cfg.VideoPath = *cmd.VideoPath
	}

	return cfg, cfg.Validate()
}

// buildProducers assembles the ordered producer list. The video mode is
// dropped from the rotation when its source cannot be decoded, matching the
// server's behavior when video.mp4 is absent.
func buildProducers(cfg config.Config, log ports.Logger) []ports.FrameProducer {
	var producers []ports.FrameProducer

	video, err := videoloop.New(modeVideo, cfg.VideoPath, cfg.Width, cfg.Height, videoloop.Options{
		FFmpegPath: cfg.FFmpegPath,
	})
	if err != nil {
		log.Warn("Video source unavailable, disabling %s mode: %s", modeVideo, err)
	} else {
		log.Info("Loaded %s: %d frames", cfg.VideoPath, video.FrameCount())
		producers = append(producers, video)
	}

	producers = append(producers,
		shapesim.New(modeShapes, cfg.ShapeCount, cfg.Width, cfg.Height, nil),
		noisegen.New(modeColorNoise, noisegen.KindColor, cfg.Width, cfg.Height, nil),
		noisegen.New(modeGrayNoise, noisegen.KindGray, cfg.Width, cfg.Height, nil),
		noisegen.New(modeBWNoise, noisegen.KindBW, cfg.Width, cfg.Height, nil),
	)
	return producers
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framecast version %s", version))
	return nil
}
