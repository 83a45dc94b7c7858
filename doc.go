// Package files models remote files and folders addressed by URL, together
// with the extension points a file browsing UI builds on: a registry of file
// actions and a registry of "new file" menu entries.
//
// The package performs no network I/O. Collaborators (a WebDAV client, a
// router) supply the raw node data and carry out the actual requests; nodes
// only hold validated metadata and derive path facts from it, relative to an
// explicitly supplied or service-detected root.
package files
