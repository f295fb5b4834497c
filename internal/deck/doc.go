// Package deck loads the seed quiz entries a session starts with. A deck is
// one or more files (or directories of files) in HCL or YAML; each registered
// Decoder handles one file extension. When no deck is configured the embedded
// default deck is used.
package deck
