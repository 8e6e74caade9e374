package browse

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count with binary units and no decimals:
// 0 -> "0B", 1023 -> "1023B", 1024 -> "1KB". Values past the unit list
// clamp at TB.
func FormatSize(size int64) string {
	v := float64(size)
	for _, unit := range sizeUnits {
		if v < 1024.0 {
			return fmt.Sprintf("%.0f%s", v, unit)
		}
		v /= 1024.0
	}
	return fmt.Sprintf("%.0fTB", v)
}
