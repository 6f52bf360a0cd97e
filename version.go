package interectors

// Version of the Interectors server and CLI.
const Version = "v0.1.0"
