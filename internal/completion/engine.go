package completion

import (
	"context"
	"errors"

	"github.com/NikitaCOEUR/envcomplete/internal/aggregate"
	"github.com/NikitaCOEUR/envcomplete/internal/config"
	"github.com/NikitaCOEUR/envcomplete/internal/derrors"
	"github.com/NikitaCOEUR/envcomplete/internal/envfile"
	"github.com/NikitaCOEUR/envcomplete/internal/logger"
	"github.com/NikitaCOEUR/envcomplete/internal/timing"
	"github.com/NikitaCOEUR/envcomplete/internal/trace"
	"github.com/NikitaCOEUR/envcomplete/internal/workspace"
)

// Engine answers completion requests for one workspace. It keeps no state
// between requests and is safe for concurrent use: every call scans the
// workspace again and aggregates into a fresh accumulator.
type Engine struct {
	ws      workspace.Workspace
	cfg     *config.Config
	builder *Builder
	log     *logger.Logger
}

// NewEngine creates an engine. A nil cfg means config.Default(), a nil log discards output.
func NewEngine(ws workspace.Workspace, cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}

	builder, err := NewBuilder(cfg.InsertTemplate, cfg.Detail)
	if err != nil {
		return nil, derrors.NewValidationError("insert_template", "invalid insert template", err)
	}

	return &Engine{ws: ws, cfg: cfg, builder: builder, log: log}, nil
}

// Supports reports whether a request for language should produce suggestions
func (e *Engine) Supports(language string) bool {
	return e.cfg.SupportsLanguage(language)
}

// Collect locates, reads and aggregates the workspace's env files.
// Per-file failures are recorded in the result and do not fail the call;
// an unavailable workspace root does.
func (e *Engine) Collect(ctx context.Context) (*aggregate.Variables, *Result, error) {
	defer trace.Region(ctx, "completion.Collect")()

	timer := timing.NewTimer()
	result := emptyResult()

	names, err := envfile.Locate(ctx, e.ws, e.cfg.LocateOptions())
	if err != nil {
		return nil, result, err
	}
	timer.Mark("locate")
	result.Files = names

	vars := aggregate.New()
	for _, name := range names {
		entries, err := e.readEntries(ctx, name)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, emptyResult(), ctxErr
			}
			e.log.Warn().Str("file", name).Err(err).Msg("Skipping env file")
			result.Skipped = append(result.Skipped, FileFailure{
				File:  name,
				Code:  derrors.CodeOf(err),
				Error: err.Error(),
			})
			continue
		}
		vars.Add(name, entries)
	}
	parse := timer.Mark("parse")

	e.log.Debug().
		Strs("files", names).
		Int("skipped", len(result.Skipped)).
		Int("variables", vars.Len()).
		Dur("parse_ms", parse).
		Str("timing", timer.Summary()).
		Msg("Collected env variables")

	return vars, result, nil
}

func (e *Engine) readEntries(ctx context.Context, name string) ([]envfile.Entry, error) {
	var entries []envfile.Entry
	var err error

	trace.WithRegion(ctx, "completion.readEntries", func() {
		trace.Log(ctx, "envfile", name)

		var data []byte
		data, err = e.ws.ReadFile(ctx, name)
		if err != nil {
			var readErr *derrors.FileReadError
			if !errors.As(err, &readErr) {
				err = derrors.NewFileReadError(name, "failed to read env file", err)
			}
			return
		}

		var text string
		text, err = envfile.Decode(data)
		if err != nil {
			err = derrors.NewFileReadError(name, "failed to decode env file", err)
			return
		}

		entries, err = envfile.Parse(text, envfile.Syntax(e.cfg.Syntax))
		if err != nil {
			err = derrors.NewFileReadError(name, "failed to parse env file", err)
		}
	})

	return entries, err
}

// Suggestions builds one suggestion per aggregated variable, in insertion order.
// Variables that cannot be turned into a suggestion are dropped.
func (e *Engine) Suggestions(vars *aggregate.Variables) []Suggestion {
	suggestions := make([]Suggestion, 0, vars.Len())
	vars.Each(func(key string, provenance []string) {
		s, err := e.builder.Build(key, provenance)
		if err != nil {
			e.log.Debug().Str("key", key).Err(err).Msg("Dropping suggestion")
			return
		}
		suggestions = append(suggestions, s)
	})
	return suggestions
}

// Complete runs the whole pipeline for req. It never fails: problems are
// logged and show up only as fewer (or no) suggestions.
func (e *Engine) Complete(ctx context.Context, req Request) *Result {
	defer trace.Region(ctx, "completion.Complete")()

	log := e.log.With("request", req.ID)

	if !e.Supports(req.Language) {
		log.Debug().Str("language", req.Language).Msg("Language does not trigger completion")
		return emptyResult()
	}

	vars, result, err := e.Collect(ctx)
	if err != nil {
		if derrors.IsNoWorkspace(err) {
			log.Error().Err(err).Msg("No workspace available")
		} else {
			log.Debug().Err(err).Msg("Completion aborted")
		}
		return emptyResult()
	}

	if len(result.Files) == 0 {
		log.Debug().Msg("No env files in workspace root")
		return result
	}

	result.Suggestions = e.Suggestions(vars)

	log.Debug().
		Int("suggestions", len(result.Suggestions)).
		Msg("Completion done")

	return result
}
