// Package download writes the raw bytes of a file held by the API to
// local disk. It is used as a response handler for file-raw calls, so
// large attachments stream straight to disk instead of being buffered.
//
// The body lands in a hidden temp file next to the destination and is
// renamed into place only once the size and optional checksum check out.
// Given the file's [Meta], the size the API reports is checked too and a
// directory destination receives the file under its reported name.
package download
