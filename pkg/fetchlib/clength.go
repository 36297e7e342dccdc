package fetchlib

import (
	"strconv"
	"strings"
)

// Size unit constants for byte conversions.
const (
	B  int64 = 1
	KB       = 1024 * B
	MB       = 1024 * KB
	GB       = 1024 * MB
	TB       = 1024 * GB
)

// ContentLength is a byte count reported by a server. A value of -1
// means the server did not announce the resource size.
type ContentLength int64

// ContentLengthUnknown marks a response whose total size is not known.
const ContentLengthUnknown ContentLength = -1

func (c ContentLength) v() int64 {
	return int64(c)
}

// IsUnknown reports whether the server announced no size.
func (c ContentLength) IsUnknown() bool {
	return c.v() < 0
}

// String renders the length using the largest applicable units,
// e.g. "1GB 204MB". Unknown lengths render as "unknown".
func (c ContentLength) String() string {
	if c.IsUnknown() {
		return "unknown"
	}
	clen := c.format(" ", sizeUnitTB, sizeUnitGB, sizeUnitMB, sizeUnitKB)
	if clen == "" {
		clen = sizeUnitBy.render(c.v())
	}
	return clen
}

func (c ContentLength) format(sep string, units ...sizeUnit) string {
	b := strings.Builder{}
	rem := c.v()
	n := len(units) - 1
	for i, unit := range units {
		var siz int64
		siz, rem = unit.split(rem)
		if siz == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(unit.render(siz))
		if i == n {
			break
		}
	}
	return b.String()
}

// sizeUnit pairs a unit size in bytes with its display suffix.
type sizeUnit struct {
	val    int64
	suffix string
}

func (s sizeUnit) split(l int64) (siz, rem int64) {
	siz = l / s.val
	rem = l % s.val
	return
}

func (s sizeUnit) render(siz int64) string {
	return strconv.FormatInt(siz, 10) + s.suffix
}

var (
	sizeUnitBy = sizeUnit{B, "B"}
	sizeUnitKB = sizeUnit{KB, "KB"}
	sizeUnitMB = sizeUnit{MB, "MB"}
	sizeUnitGB = sizeUnit{GB, "GB"}
	sizeUnitTB = sizeUnit{TB, "TB"}
)
