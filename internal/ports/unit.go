package ports

import "strings"

// Unit is one of the size units offered to the user.
type Unit string

const (
	UnitTB    Unit = "TB"
	UnitGB    Unit = "GB"
	UnitMB    Unit = "MB"
	UnitKB    Unit = "KB"
	UnitBytes Unit = "BYTES"
)

// Units lists the units in menu order: option 1 is TB, option 5 is BYTES.
var Units = []Unit{UnitTB, UnitGB, UnitMB, UnitKB, UnitBytes}

// Multiplier returns the power-of-1024 byte multiplier for u, or 0 for an unknown unit.
func (u Unit) Multiplier() int64 {
	switch u {
	case UnitTB:
		return 1 << 40
	case UnitGB:
		return 1 << 30
	case UnitMB:
		return 1 << 20
	case UnitKB:
		return 1 << 10
	case UnitBytes:
		return 1
	default:
		return 0
	}
}

// Label is the human name shown in menus.
func (u Unit) Label() string {
	switch u {
	case UnitTB:
		return "TB (Terabytes)"
	case UnitGB:
		return "GB (Gigabytes)"
	case UnitMB:
		return "MB (Megabytes)"
	case UnitKB:
		return "KB (Kilobytes)"
	case UnitBytes:
		return "Bytes"
	default:
		return string(u)
	}
}

// ParseUnit maps a unit name (case-insensitive, "B" allowed for bytes) to a Unit.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TB", "T":
		return UnitTB, true
	case "GB", "G":
		return UnitGB, true
	case "MB", "M":
		return UnitMB, true
	case "KB", "K":
		return UnitKB, true
	case "BYTES", "BYTE", "B", "":
		return UnitBytes, true
	default:
		return "", false
	}
}
