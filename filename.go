package files

import (
	"fmt"
	"path"
	"strings"

	"github.com/davkit/files/config"
)

// InvalidFilenameErrorReason classifies why a filename was rejected.
type InvalidFilenameErrorReason string

const (
	ReasonReservedName InvalidFilenameErrorReason = "filename"
	ReasonCharacter    InvalidFilenameErrorReason = "character"
	ReasonExtension    InvalidFilenameErrorReason = "extension"
)

// InvalidFilenameError reports which part of a candidate filename violated
// the configured restrictions.
type InvalidFilenameError struct {
	Filename string
	Reason   InvalidFilenameErrorReason
	Segment  string
}

func (e *InvalidFilenameError) Error() string {
	return fmt.Sprintf("Invalid %s %q in filename %q", e.Reason, e.Segment, e.Filename)
}

// ValidateFilename checks a candidate filename against the configured
// restrictions. A nil cfg uses the defaults. Comparisons are
// case-insensitive, mirroring server behavior.
func ValidateFilename(name string, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	lower := strings.ToLower(name)
	for _, forbidden := range cfg.ForbiddenFilenames {
		if lower == strings.ToLower(forbidden) {
			return &InvalidFilenameError{Filename: name, Reason: ReasonReservedName, Segment: forbidden}
		}
	}
	// Basenames compare up to the first dot (dotfiles keep their leading
	// dot), so ".htaccess" also covers ".htaccess.bak".
	base := lower
	if len(lower) > 1 {
		if i := strings.Index(lower[1:], "."); i >= 0 {
			base = lower[:i+1]
		}
	}
	for _, forbidden := range cfg.ForbiddenBasenames {
		if base == strings.ToLower(forbidden) {
			return &InvalidFilenameError{Filename: name, Reason: ReasonReservedName, Segment: forbidden}
		}
	}
	for _, c := range cfg.ForbiddenCharacters {
		if strings.Contains(name, c) {
			return &InvalidFilenameError{Filename: name, Reason: ReasonCharacter, Segment: c}
		}
	}
	for _, ext := range cfg.ForbiddenExtensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return &InvalidFilenameError{Filename: name, Reason: ReasonExtension, Segment: ext}
		}
	}
	return nil
}

// IsFilenameValid reports whether name passes ValidateFilename.
func IsFilenameValid(name string, cfg *config.Config) bool {
	return ValidateFilename(name, cfg) == nil
}

// GetUniqueName returns name untouched when it does not collide with
// otherNames, otherwise appends an increasing " (n)" counter before the
// extension until it is unique.
func GetUniqueName(name string, otherNames []string) string {
	taken := make(map[string]struct{}, len(otherNames))
	for _, other := range otherNames {
		taken[other] = struct{}{}
	}
	if _, exists := taken[name]; !exists {
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
	}
}
