package files

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davkit/files/internal/util"
)

const davSource = "https://cloud.example.com/remote.php/dav/files/emma/Photos/picture.jpg"

func validFileData() NodeData {
	return NodeData{
		Source: davSource,
		Mime:   "image/jpeg",
	}
}

func TestValidateData_ValidFile(t *testing.T) {
	t.Parallel()

	data := validFileData()
	err := validateData(&data, TypeFile, DefaultDavService)
	assert.NoError(t, err)
}

func TestValidateData_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(d *NodeData)
		fileType FileType
		wantErr  error
	}{
		{
			name:     "missing source",
			mutate:   func(d *NodeData) { d.Source = "" },
			fileType: TypeFile,
			wantErr:  ErrMissingSource,
		},
		{
			name:     "source with spaces",
			mutate:   func(d *NodeData) { d.Source = "not a url" },
			fileType: TypeFile,
			wantErr:  ErrInvalidSourceURL,
		},
		{
			name:     "relative source",
			mutate:   func(d *NodeData) { d.Source = "cloud.example.com/remote.php/dav/files/emma/a.jpg" },
			fileType: TypeFile,
			wantErr:  ErrInvalidSourceURL,
		},
		{
			name:     "unsupported scheme",
			mutate:   func(d *NodeData) { d.Source = "ftp://cloud.example.com/picture.jpg" },
			fileType: TypeFile,
			wantErr:  ErrInvalidSourceScheme,
		},
		{
			name:     "negative id",
			mutate:   func(d *NodeData) { d.ID = util.Pointer(int64(-1)) },
			fileType: TypeFile,
			wantErr:  ErrInvalidID,
		},
		{
			name:     "zero mtime",
			mutate:   func(d *NodeData) { d.Mtime = &time.Time{} },
			fileType: TypeFile,
			wantErr:  ErrInvalidMtime,
		},
		{
			name:     "zero crtime",
			mutate:   func(d *NodeData) { d.Crtime = &time.Time{} },
			fileType: TypeFile,
			wantErr:  ErrInvalidCrtime,
		},
		{
			name:     "negative size",
			mutate:   func(d *NodeData) { d.Size = util.Pointer(int64(-10)) },
			fileType: TypeFile,
			wantErr:  ErrInvalidSize,
		},
		{
			name:     "file without mime",
			mutate:   func(d *NodeData) { d.Mime = "" },
			fileType: TypeFile,
			wantErr:  ErrInvalidMime,
		},
		{
			name:     "file with malformed mime",
			mutate:   func(d *NodeData) { d.Mime = "image" },
			fileType: TypeFile,
			wantErr:  ErrInvalidMime,
		},
		{
			name:     "folder with malformed mime",
			mutate:   func(d *NodeData) { d.Mime = "not a mime" },
			fileType: TypeFolder,
			wantErr:  ErrInvalidMime,
		},
		{
			name:     "permissions outside known bits",
			mutate:   func(d *NodeData) { d.Permissions = Permission(324) },
			fileType: TypeFile,
			wantErr:  ErrInvalidPermissions,
		},
		{
			name:     "root without leading slash",
			mutate:   func(d *NodeData) { d.Root = "files/emma" },
			fileType: TypeFile,
			wantErr:  ErrRootLeadingSlash,
		},
		{
			name:     "root not in source path",
			mutate:   func(d *NodeData) { d.Root = "/files/alice" },
			fileType: TypeFile,
			wantErr:  ErrRootNotInSource,
		},
		{
			name:     "root not relative to the service",
			mutate:   func(d *NodeData) { d.Root = "/emma" },
			fileType: TypeFile,
			wantErr:  ErrRootNotServiceRelative,
		},
		{
			name:     "unknown status",
			mutate:   func(d *NodeData) { d.Status = NodeStatus("frozen") },
			fileType: TypeFile,
			wantErr:  ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := validFileData()
			tt.mutate(&data)
			err := validateData(&data, tt.fileType, DefaultDavService)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Checks run in a fixed order, so the first violated rule wins.
func TestValidateData_FirstViolationWins(t *testing.T) {
	t.Parallel()

	data := validFileData()
	data.Source = "ftp://cloud.example.com/picture.jpg"
	data.ID = util.Pointer(int64(-1))

	err := validateData(&data, TypeFile, DefaultDavService)
	assert.ErrorIs(t, err, ErrInvalidSourceScheme)
}

func TestValidateData_FolderWithoutMime(t *testing.T) {
	t.Parallel()

	data := NodeData{Source: "https://cloud.example.com/remote.php/dav/files/emma/Photos"}
	err := validateData(&data, TypeFolder, DefaultDavService)
	assert.NoError(t, err)
}

func TestValidateData_ValidRoot(t *testing.T) {
	t.Parallel()

	data := validFileData()
	data.Root = "/files/emma"
	err := validateData(&data, TypeFile, DefaultDavService)
	assert.NoError(t, err)
}
