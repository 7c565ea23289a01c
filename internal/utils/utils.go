package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hailam/gencorpus/internal/ports"
)

// ParseSize parses strings like "500", "10K", "4MB", "1.5G" or "2 TB" into a
// number of bytes. Fractional results are floored.
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	if sizeStr == "" {
		return 0, errors.New("size string is empty")
	}
	// Find numeric part and suffix part
	numPart, suffix := sizeStr, ""
	if i := strings.IndexFunc(sizeStr, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	}); i >= 0 {
		numPart = sizeStr[:i]
		suffix = strings.TrimSpace(sizeStr[i:])
	}
	if numPart == "" {
		return 0, errors.Errorf("invalid size number in %q", sizeStr)
	}
	val, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid size number")
	}
	unit, ok := ports.ParseUnit(suffix)
	if !ok {
		return 0, errors.Errorf("unknown size suffix '%s'", suffix)
	}
	bytes := math.Floor(val * float64(unit.Multiplier()))
	if bytes >= math.MaxInt64 {
		return 0, errors.Errorf("size %q overflows", sizeStr)
	}
	return int64(bytes), nil
}
