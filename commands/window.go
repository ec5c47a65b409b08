package commands

import (
	"context"
	"fmt"

	"github.com/penwyp/go-utc-face/internal/application/watchface"
	"github.com/penwyp/go-utc-face/internal/presentation/interaction"
	"github.com/penwyp/go-utc-face/internal/presentation/window"
	"github.com/penwyp/go-utc-face/internal/util"
	"github.com/spf13/cobra"
)

var (
	windowWidth  int
	windowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the face in a desktop window",
	Long: `Opens a desktop window showing the face. The same keys as the terminal face
apply; closing the window or pressing q quits.`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().IntVar(&windowWidth, "width", 400,
		"Window width in pixels")
	windowCmd.Flags().IntVar(&windowHeight, "height", 400,
		"Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) error {
	if windowWidth < 1 || windowHeight < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", windowWidth, windowHeight)
	}

	initLogging()
	defer util.CloseLogger()

	keys := make(chan interaction.KeyEvent, 10)
	game, err := window.NewGame(windowWidth, windowHeight, keys)
	if err != nil {
		return err
	}
	surface, err := watchface.NewRecorderSurface(game)
	if err != nil {
		return err
	}

	config := faceConfig()
	config.WatchTimezone = timezone == util.LocalZone
	orchestrator, err := watchface.NewOrchestrator(config, surface, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- orchestrator.Run(ctx, keys)
		game.Close()
	}()

	// ebiten must own the main goroutine
	if err := game.Run("go-utc-face"); err != nil {
		cancel()
		<-done
		return fmt.Errorf("window failed: %w", err)
	}
	cancel()
	return <-done
}
