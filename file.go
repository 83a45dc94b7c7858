package files

import "regexp"

// File is the leaf node variant. Files always carry a well-formed
// "type/subtype" mime.
type File struct {
	*Node
}

// NewFile constructs a File from data using the default DAV service
// detection pattern.
func NewFile(data NodeData) (*File, error) {
	return NewFileWithService(data, DefaultDavService)
}

// NewFileWithService constructs a File detecting DAV addressing with a
// custom pattern.
func NewFileWithService(data NodeData, davService *regexp.Regexp) (*File, error) {
	n, err := newNode(data, TypeFile, davService)
	if err != nil {
		return nil, err
	}
	return &File{Node: n}, nil
}
