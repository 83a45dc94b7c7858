package files

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davkit/files/internal/util"
)

func testNode(t *testing.T, name string, fileType FileType, mutate func(d *NodeData)) *Node {
	t.Helper()
	data := NodeData{
		Source: "https://cloud.example.com/remote.php/dav/files/emma/" + name,
		Mime:   "application/octet-stream",
	}
	if mutate != nil {
		mutate(&data)
	}
	n, err := newNode(data, fileType, DefaultDavService)
	require.NoError(t, err)
	return n
}

func basenames(nodes []*Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Basename()
	}
	return names
}

func TestSortNodes_NaturalBasename(t *testing.T) {
	t.Parallel()

	nodes := []*Node{
		testNode(t, "file10.txt", TypeFile, nil),
		testNode(t, "File2.txt", TypeFile, nil),
		testNode(t, "file1.txt", TypeFile, nil),
	}

	sorted := SortNodes(nodes, SortingOptions{})
	assert.Equal(t, []string{"file1.txt", "File2.txt", "file10.txt"}, basenames(sorted))

	// Input order is untouched.
	assert.Equal(t, "file10.txt", nodes[0].Basename())
}

func TestSortNodes_FoldersFirst(t *testing.T) {
	t.Parallel()

	nodes := []*Node{
		testNode(t, "zebra.txt", TypeFile, nil),
		testNode(t, "Documents", TypeFolder, func(d *NodeData) { d.Mime = "" }),
		testNode(t, "alpha.txt", TypeFile, nil),
	}

	sorted := SortNodes(nodes, SortingOptions{FoldersFirst: true})
	assert.Equal(t, []string{"Documents", "alpha.txt", "zebra.txt"}, basenames(sorted))
}

func TestSortNodes_FavoritesFirst(t *testing.T) {
	t.Parallel()

	nodes := []*Node{
		testNode(t, "a.txt", TypeFile, nil),
		testNode(t, "b.txt", TypeFile, func(d *NodeData) {
			d.Attributes = map[string]any{"favorite": 1}
		}),
	}

	sorted := SortNodes(nodes, SortingOptions{FavoritesFirst: true})
	assert.Equal(t, []string{"b.txt", "a.txt"}, basenames(sorted))
}

func TestSortNodes_BySizeDescending(t *testing.T) {
	t.Parallel()

	nodes := []*Node{
		testNode(t, "small.txt", TypeFile, func(d *NodeData) { d.Size = util.Pointer(int64(10)) }),
		testNode(t, "big.txt", TypeFile, func(d *NodeData) { d.Size = util.Pointer(int64(1000)) }),
		testNode(t, "medium.txt", TypeFile, func(d *NodeData) { d.Size = util.Pointer(int64(100)) }),
	}

	sorted := SortNodes(nodes, SortingOptions{Mode: SortSize, Descending: true})
	assert.Equal(t, []string{"big.txt", "medium.txt", "small.txt"}, basenames(sorted))
}

func TestSortNodes_ByMtime(t *testing.T) {
	t.Parallel()

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Hour)
	nodes := []*Node{
		testNode(t, "recent.txt", TypeFile, func(d *NodeData) { d.Mtime = &recent }),
		testNode(t, "old.txt", TypeFile, func(d *NodeData) { d.Mtime = &old }),
		testNode(t, "unknown.txt", TypeFile, nil),
	}

	sorted := SortNodes(nodes, SortingOptions{Mode: SortMtime})
	assert.Equal(t, []string{"unknown.txt", "old.txt", "recent.txt"}, basenames(sorted))
}

func TestCompareNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"file2", "file10", -1},
		{"file10", "file2", 1},
		{"a", "b", -1},
		{"File", "file", 0},
		{"file01", "file1", 0},
		{"abc", "abcd", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareNatural(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}
