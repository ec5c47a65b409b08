package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/penwyp/go-utc-face/internal/application/watchface"
	"github.com/penwyp/go-utc-face/internal/presentation/display"
	"github.com/penwyp/go-utc-face/internal/presentation/interaction"
	"github.com/penwyp/go-utc-face/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Zone related
	timezone      string
	watchTimezone bool

	// Display related
	round         bool
	ambient       bool
	lowBitAmbient bool
	muted         bool
	resourcesFile string

	// Host state
	eventsFile string

	rootCmd = &cobra.Command{
		Use:   "go-utc-face [flags]",
		Short: "24-hour analog face showing local time and UTC",
		Long: `go-utc-face draws a 24-hour analog face in the terminal. The local hour
and the current UTC hour are highlighted on the dial and the local offset
from UTC is shown as a label.

Keys:
  a  toggle ambient mode        l  toggle low-bit ambient
  m  toggle mute                p  toggle a peek card
  v  toggle visibility          s  toggle round/rectangular
  q  quit

Examples:
  go-utc-face                                   # Local zone in the terminal
  go-utc-face --timezone Asia/Kolkata           # Another zone
  go-utc-face --events /tmp/face.json           # Follow a host state file
  go-utc-face snapshot --zone UTC --out face.png
  go-utc-face window --width 454 --height 454 --round`,
		RunE:          runFace,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

const defaultLogFile = "~/.go-utc-face/logs/face.log"

func init() {
	// Zone configuration
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", util.LocalZone,
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.Flags().BoolVar(&watchTimezone, "watch-timezone", true,
		"Follow changes to "+watchface.DefaultTimezoneFile)

	// Display configuration
	rootCmd.PersistentFlags().BoolVar(&round, "round", false,
		"Use the round display layout")
	rootCmd.PersistentFlags().BoolVar(&ambient, "ambient", false,
		"Start in ambient mode")
	rootCmd.PersistentFlags().BoolVar(&lowBitAmbient, "low-bit", false,
		"Display supports only low-bit ambient rendering")
	rootCmd.PersistentFlags().BoolVar(&muted, "muted", false,
		"Start muted")
	rootCmd.PersistentFlags().StringVar(&resourcesFile, "resources", "",
		"YAML file overriding colors and dimensions")

	// Host state
	rootCmd.PersistentFlags().StringVar(&eventsFile, "events", "",
		"JSON host state file to follow (visible, ambient, low_bit_ambient, muted, round, peek_card)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runFace(cmd *cobra.Command, args []string) error {
	initLogging()
	defer util.CloseLogger()

	termDisplay := display.NewTerminalDisplay(os.Stdout)
	surface := watchface.NewTerminalSurface(termDisplay)
	defer surface.Close()

	orchestrator, err := watchface.NewOrchestrator(faceConfig(), surface, nil)
	if err != nil {
		return err
	}

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	defer keyboard.Close()

	termDisplay.EnterAlternateScreen()
	defer termDisplay.ExitAlternateScreen()

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return orchestrator.Run(ctx, keyboard.Events())
}

// faceConfig builds the face configuration from the persistent flags
func faceConfig() *watchface.FaceConfig {
	config := &watchface.FaceConfig{
		Timezone:      timezone,
		WatchTimezone: watchTimezone && timezone == util.LocalZone,
		Round:         round,
		Ambient:       ambient,
		LowBitAmbient: lowBitAmbient,
		Muted:         muted,
	}
	if resourcesFile != "" {
		config.ResourcesFile = expandPath(resourcesFile)
	}
	if eventsFile != "" {
		config.EventsFile = expandPath(eventsFile)
	}
	return config
}

func initLogging() {
	// Determine log level based on debug flag
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		logFile = ""
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
