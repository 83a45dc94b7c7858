package files

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	decimalPrefixes = []string{"B", "KB", "MB", "GB", "TB", "PB"}
	binaryPrefixes  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
)

// ErrInvalidFileSize is returned by ParseFileSize for unparseable input.
var ErrInvalidFileSize = errors.New("Invalid file size")

// FormatFileSize renders a byte count for display, e.g. "5.5 MB". With
// binary set, powers of 1024 and IEC prefixes (KiB, MiB, ...) are used
// instead of powers of 1000.
func FormatFileSize(size int64, binary bool) string {
	base := 1000.0
	prefixes := decimalPrefixes
	if binary {
		base = 1024.0
		prefixes = binaryPrefixes
	}
	if size < 0 {
		return "0 B"
	}
	order := 0
	if size > 0 {
		order = int(math.Floor(math.Log(float64(size)) / math.Log(base)))
	}
	if order >= len(prefixes) {
		order = len(prefixes) - 1
	}
	value := float64(size) / math.Pow(base, float64(order))
	if order == 0 {
		return fmt.Sprintf("%d %s", size, prefixes[0])
	}
	formatted := strconv.FormatFloat(value, 'f', 1, 64)
	formatted = strings.TrimSuffix(formatted, ".0")
	return formatted + " " + prefixes[order]
}

var fileSizePattern = regexp.MustCompile(`(?i)^\s*([0-9]*(?:\.[0-9]*)?)\s*([kmgtp]?)(i?)b?\s*$`)

// ParseFileSize parses human input like "10 kb", "5.5MiB" or "2G" into a
// byte count. Lone prefixes ("5k") are treated as decimal unless forceBinary
// is set.
func ParseFileSize(input string, forceBinary bool) (int64, error) {
	match := fileSizePattern.FindStringSubmatch(input)
	if match == nil || match[1] == "" {
		return 0, ErrInvalidFileSize
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, ErrInvalidFileSize
	}
	order := strings.Index("kmgtp", strings.ToLower(match[2])) + 1
	base := 1000.0
	if match[3] != "" || forceBinary {
		base = 1024.0
	}
	return int64(math.Round(value * math.Pow(base, float64(order)))), nil
}
