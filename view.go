package files

// View identifies the file list a user is currently navigating (all files,
// favorites, shares, ...). The core treats it as an opaque context value and
// only passes it through to action callables.
type View struct {
	ID   string
	Name string
}
