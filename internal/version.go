package internal

// Version is the release version stamped into the binaries.
const Version = "0.1.0"
