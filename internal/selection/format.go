package selection

import (
	"fmt"
	"strconv"
)

// FormatSize renders a byte count in the given unit. Kilobytes are size/1024
// rounded half up to two decimals using integer arithmetic, so ties such as
// 128 bytes (0.125 KB) always round to "0.13".
func FormatSize(size int64, unit Unit) string {
	if size < 0 {
		size = 0
	}
	if unit == UnitBytes {
		return strconv.FormatInt(size, 10) + " bytes"
	}
	whole := size / 1024
	rem := size % 1024
	hundredths := (rem*100 + 512) / 1024
	if hundredths == 100 {
		whole++
		hundredths = 0
	}
	return fmt.Sprintf("%d.%02d kilobytes", whole, hundredths)
}

// Line builds the summary line for one file.
func Line(f FileDescriptor, userName string, cfg DisplayConfig) string {
	cfg = cfg.normalized()
	line := f.Name + ": " + FormatSize(f.Size, cfg.Unit)
	if cfg.PrependUserName {
		line = userName + "-" + line
	}
	return line
}
