package files

import (
	"slices"
	"sort"
	"strings"
	"unicode"
)

// SortingMode selects the primary sort key for SortNodes.
type SortingMode string

const (
	SortBasename SortingMode = "basename"
	SortSize     SortingMode = "size"
	SortMtime    SortingMode = "mtime"
)

// SortingOptions controls SortNodes. The zero value sorts ascending by
// basename with no pinning.
type SortingOptions struct {
	Mode           SortingMode
	Descending     bool
	FoldersFirst   bool
	FavoritesFirst bool // pins nodes whose "favorite" attribute is truthy
}

// SortNodes returns a sorted copy of nodes for display. Pinned groups
// (folders, favorites) keep their position regardless of direction; ties
// fall back to a natural basename comparison.
func SortNodes(nodes []*Node, opts SortingOptions) []*Node {
	sorted := slices.Clone(nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if opts.FavoritesFirst {
			if fa, fb := isFavorite(a), isFavorite(b); fa != fb {
				return fa
			}
		}
		if opts.FoldersFirst {
			if da, db := a.Type() == TypeFolder, b.Type() == TypeFolder; da != db {
				return da
			}
		}
		if c := compareByMode(a, b, opts.Mode); c != 0 {
			if opts.Descending {
				return c > 0
			}
			return c < 0
		}
		return compareNatural(a.Basename(), b.Basename()) < 0
	})
	return sorted
}

func compareByMode(a, b *Node, mode SortingMode) int {
	switch mode {
	case SortSize:
		sa, _ := a.Size()
		sb, _ := b.Size()
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	case SortMtime:
		var ta, tb int64
		if t := a.Mtime(); t != nil {
			ta = t.UnixNano()
		}
		if t := b.Mtime(); t != nil {
			tb = t.UnixNano()
		}
		switch {
		case ta < tb:
			return -1
		case ta > tb:
			return 1
		}
		return 0
	default:
		return compareNatural(a.Basename(), b.Basename())
	}
}

func isFavorite(n *Node) bool {
	v, ok := n.Attributes().Get("favorite")
	if !ok {
		return false
	}
	switch fav := v.(type) {
	case bool:
		return fav
	case int:
		return fav != 0
	case float64:
		return fav != 0
	case string:
		return fav == "1" || fav == "true"
	}
	return false
}

// compareNatural orders strings case-insensitively with digit runs compared
// as numbers, so "file2" sorts before "file10".
func compareNatural(a, b string) int {
	ra, rb := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			na, ni := digitRun(ra, i)
			nb, nj := digitRun(rb, j)
			if c := compareDigits(na, nb); c != 0 {
				return c
			}
			i, j = ni, nj
			continue
		}
		if ra[i] != rb[j] {
			if ra[i] < rb[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	}
	return 0
}

// digitRun extracts the digit run starting at i with leading zeros trimmed.
func digitRun(r []rune, i int) (string, int) {
	start := i
	for i < len(r) && unicode.IsDigit(r[i]) {
		i++
	}
	run := strings.TrimLeft(string(r[start:i]), "0")
	if run == "" {
		run = "0"
	}
	return run, i
}

func compareDigits(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
