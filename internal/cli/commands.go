package cli

// Command implementations are split by file:
// - complete.go: Complete command (one-shot completion request)
// - files.go: Files command
// - show.go: Show command (styled workspace report)
// - serve.go: Serve command (JSON-lines request loop)
// - validate.go: Validate command
// - schema.go: Schema command
// - init_cmd.go: Init command
//
// Shared setup lives in helpers.go.
