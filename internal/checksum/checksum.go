// Package checksum hands a finished rom to the external CRC fixer. The rom
// boots only once its header CRC matches the patched contents.
package checksum

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrToolMissing means the patched rom exists but still carries the old crc.
var ErrToolMissing = errors.New("checksum tool not found; the rom was written but its crc is stale")

// UpdateFlag asks the tool to rewrite the header in place.
const UpdateFlag = "-u"

// Fix runs `tool path -u`. It must only be called once every write to path
// has been flushed and the file closed.
func Fix(ctx context.Context, tool, path string) error {
	if _, err := os.Stat(tool); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrToolMissing, tool)
		}
		return err
	}
	out, err := exec.CommandContext(ctx, tool, path, UpdateFlag).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("run %s: %w", tool, err)
		}
		return fmt.Errorf("run %s: %w: %s", tool, err, msg)
	}
	return nil
}
