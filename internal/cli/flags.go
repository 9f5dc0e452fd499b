package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	Lang    string
	Engine  string
	File    string

	// Japanese flags
	MeCab bool

	// Data locations
	DataDir     string
	FreeLingDir string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Lang: "en",
	}
}
