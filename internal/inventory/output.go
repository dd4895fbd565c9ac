package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/image-inventory/internal/common"
)

// timestampLayout matches the suffix format the audit sheets have always
// carried: YYYYMMDD_HHMMSS in local time.
const timestampLayout = "20060102_150405"

// ResolveOutputPath inserts a timestamp suffix between the output file's
// stem and extension when requested; otherwise it returns path unchanged.
func ResolveOutputPath(path string, timestamped bool, now time.Time) string {
	if !timestamped {
		return path
	}
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_%s%s", stem, now.Format(timestampLayout), ext))
}

// ensureParentDir creates the output file's parent directories if missing.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return common.WrapError(err, "create output directory")
	}
	return nil
}
