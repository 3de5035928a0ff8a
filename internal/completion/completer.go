// Package completion turns the env files of a workspace into completion
// suggestions for environment variable names.
package completion

// Kind classifies a suggestion for the host's completion UI
type Kind string

// KindEnumMember is the kind reported for every env variable suggestion
const KindEnumMember Kind = "enum_member"

// Suggestion represents a single completion suggestion
type Suggestion struct {
	Label         string `json:"label" yaml:"label"`
	InsertText    string `json:"insert_text" yaml:"insert_text"`
	Documentation string `json:"documentation" yaml:"documentation"`
	Detail        string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Kind          Kind   `json:"kind" yaml:"kind"`
}

// Request describes one completion trigger. The cursor position is accepted
// for hosts that send it but does not change the result: the same list is
// suggested regardless of what has been typed.
type Request struct {
	ID        int64  `json:"id"`
	Language  string `json:"language,omitempty"`
	Line      int    `json:"line,omitempty"`
	Character int    `json:"character,omitempty"`
}

// FileFailure records an env file that was skipped
type FileFailure struct {
	File  string `json:"file" yaml:"file"`
	Code  string `json:"code" yaml:"code"`
	Error string `json:"error" yaml:"error"`
}

// Result represents the result of a completion request
type Result struct {
	Suggestions []Suggestion  `json:"items" yaml:"items"`
	Files       []string      `json:"files,omitempty" yaml:"files,omitempty"`
	Skipped     []FileFailure `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func emptyResult() *Result {
	return &Result{Suggestions: []Suggestion{}}
}
