package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/penwyp/go-utc-face/internal/application/watchface"
	"github.com/penwyp/go-utc-face/internal/core/face"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/presentation/canvas"
	"github.com/penwyp/go-utc-face/internal/util"
	"github.com/spf13/cobra"
)

var (
	snapshotAt      string
	snapshotZone    string
	snapshotOut     string
	snapshotWidth   int
	snapshotHeight  int
	snapshotCols    int
	snapshotRows    int
	snapshotPeekTop int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a single frame to a PNG file or the terminal",
	Long: `Renders one frame of the face at a fixed instant. With --out - the frame is
printed as terminal text, otherwise it is written as a PNG image.

Examples:
  go-utc-face snapshot --at 2024-03-01T14:30:00-05:30 --zone Asia/Kolkata --out face.png
  go-utc-face snapshot --zone UTC --out - --ambient
  go-utc-face snapshot --peek-top 300 --round`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVar(&snapshotAt, "at", "",
		"Instant to render in RFC 3339 (default now)")
	snapshotCmd.Flags().StringVar(&snapshotZone, "zone", "",
		"Zone to render (default --timezone)")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "face.png",
		"Output PNG file, or - for terminal text")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 400,
		"Image width in pixels")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 400,
		"Image height in pixels")
	snapshotCmd.Flags().IntVar(&snapshotCols, "cols", 64,
		"Terminal text width in cells")
	snapshotCmd.Flags().IntVar(&snapshotRows, "rows", 32,
		"Terminal text height in cells")
	snapshotCmd.Flags().IntVar(&snapshotPeekTop, "peek-top", 0,
		"Top edge of a peek card covering the bottom of the face (0 = none)")
}

// snapshotHost ignores ticks; a snapshot draws exactly one frame
type snapshotHost struct{}

func (snapshotHost) ScheduleTick(time.Duration) {}
func (snapshotHost) CancelTick() {}
func (snapshotHost) RequestRedraw() {}

func runSnapshot(cmd *cobra.Command, args []string) error {
	initLogging()
	defer util.CloseLogger()

	at := time.Now()
	if snapshotAt != "" {
		parsed, err := time.Parse(time.RFC3339, snapshotAt)
		if err != nil {
			return fmt.Errorf("invalid --at '%s': %w", snapshotAt, err)
		}
		at = parsed
	}

	zone := snapshotZone
	if zone == "" {
		zone = timezone
	}

	tp, err := util.NewTimeProvider(clockwork.NewFakeClockAt(at), zone)
	if err != nil {
		return err
	}

	config := faceConfig()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	res, err := watchface.LoadResources(config.ResourcesFile)
	if err != nil {
		return err
	}

	engine := face.NewEngine(tp, snapshotHost{}, face.Options{
		Resources: res,
		Mode:      config.Mode(),
		Shape:     config.Shape(),
	})

	if snapshotOut == "-" {
		cells := canvas.NewCells(snapshotCols, snapshotRows)
		setPeekCard(engine, cells.Bounds())
		engine.Draw(cells, cells.Bounds())
		for _, line := range cells.Lines() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	}

	fonts, err := canvas.NewFontCache()
	if err != nil {
		return err
	}
	raster := canvas.NewRaster(snapshotWidth, snapshotHeight, fonts)
	setPeekCard(engine, raster.Bounds())
	engine.Draw(raster, raster.Bounds())

	f, err := os.Create(snapshotOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", snapshotOut, err)
	}
	if err := writeAndClose(f, snapshotOut, raster.EncodePNG); err != nil {
		return err
	}
	util.LogInfof("Snapshot of %s at %s written to %s", engine.Zone(), tp.Format(at, time.RFC3339), snapshotOut)
	return nil
}

// writeAndClose encodes into w and closes it. A failed close is an error too.
func writeAndClose(w io.WriteCloser, name string, encode func(io.Writer) error) error {
	if err := encode(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

func setPeekCard(engine *face.Engine, bounds model.Rect) {
	if snapshotPeekTop <= 0 {
		return
	}
	engine.OnPeekCardBoundsChanged(model.Rect{
		Left:   bounds.Left,
		Top:    bounds.Top + snapshotPeekTop,
		Right:  bounds.Right,
		Bottom: bounds.Bottom,
	})
}
