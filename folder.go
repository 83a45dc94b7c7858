package files

import "regexp"

// Folder is the container node variant. A folder's mime is optional since
// containers have arbitrary or no content type.
type Folder struct {
	*Node
}

// NewFolder constructs a Folder from data using the default DAV service
// detection pattern.
func NewFolder(data NodeData) (*Folder, error) {
	return NewFolderWithService(data, DefaultDavService)
}

// NewFolderWithService constructs a Folder detecting DAV addressing with a
// custom pattern.
func NewFolderWithService(data NodeData, davService *regexp.Regexp) (*Folder, error) {
	n, err := newNode(data, TypeFolder, davService)
	if err != nil {
		return nil, err
	}
	return &Folder{Node: n}, nil
}
