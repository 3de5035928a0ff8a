package status

// Data contains all the information to display in status
type Data struct {
	// Header
	Root    string
	Version string

	// Configuration
	ConfigPath     string // empty when running on defaults
	Prefix         string
	Syntax         string
	InsertTemplate string
	Languages      []string

	// Env files, in scan order
	Files []FileInfo

	// Variables, in aggregation order
	Variables []VariableInfo
}

// FileInfo describes one located env file
type FileInfo struct {
	Name    string
	Skipped bool
	Error   string
}

// VariableInfo describes one aggregated variable
type VariableInfo struct {
	Key         string
	InsertText  string
	Definitions []string // "file: value" pairs
}
