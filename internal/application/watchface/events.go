package watchface

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/codeGROOVE-dev/retry"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/util"
)

var errEmptyState = errors.New("host state file is empty")

// HostState is the host-owned state an external process writes to the
// events file. Absent fields leave the engine untouched.
type HostState struct {
	Visible       *bool       `json:"visible,omitempty"`
	Ambient       *bool       `json:"ambient,omitempty"`
	LowBitAmbient *bool       `json:"low_bit_ambient,omitempty"`
	Muted         *bool       `json:"muted,omitempty"`
	Round         *bool       `json:"round,omitempty"`
	PeekCard      *model.Rect `json:"peek_card,omitempty"`
}

// LoadHostState reads the events file. A missing file returns a nil state.
// Empty or malformed content is retried briefly since writers may be caught
// halfway through a write.
func LoadHostState(ctx context.Context, path string) (*HostState, error) {
	var state *HostState
	missing := false

	err := retry.Do(
		func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					missing = true
					return nil
				}
				return retry.Unrecoverable(err)
			}
			if len(bytes.TrimSpace(data)) == 0 {
				return errEmptyState
			}

			var s HostState
			if err := sonic.Unmarshal(data, &s); err != nil {
				return err
			}
			state = &s
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(20*time.Millisecond),
		retry.MaxDelay(100*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			util.LogDebugf("Retrying host state read %s (attempt %d): %v", path, n+1, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load host state from %s: %w", path, err)
	}
	if missing {
		util.LogDebugf("Host state file %s not found", path)
		return nil, nil
	}
	return state, nil
}
