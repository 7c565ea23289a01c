package utils

import (
	"github.com/pkg/errors"

	"github.com/hailam/gencorpus/internal/ports"
	"github.com/hailam/gencorpus/internal/utils"
)

// UtilSizeParser adapts the utils.ParseSize function to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

// Parse rejects specs that come out below one byte.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	n, err := utils.ParseSize(spec)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.Errorf("size %q is less than one byte", spec)
	}
	return n, nil
}
