// Package server answers completion requests over a JSON-lines stream, one
// request object per input line and one response object per output line.
//
//	-> {"id":1,"language":"typescript","line":3,"character":14}
//	<- {"id":1,"items":[{"label":"PORT","insert_text":"process.env.PORT",...}]}
//
// Requests are handled concurrently and responses may come back out of
// order; hosts match them by id and drop stale ones.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/NikitaCOEUR/envcomplete/internal/completion"
	"github.com/NikitaCOEUR/envcomplete/internal/logger"
)

const maxLineSize = 1 << 20

// InvalidRequestID answers a line whose id cannot be recovered
const InvalidRequestID int64 = -1

// Response is written for every request line
type Response struct {
	ID    int64                   `json:"id"`
	Items []completion.Suggestion `json:"items"`
	Error string                  `json:"error,omitempty"`
}

// Completer is the part of completion.Engine the server needs
type Completer interface {
	Complete(ctx context.Context, req completion.Request) *completion.Result
}

// Server reads requests and writes responses
type Server struct {
	completer Completer
	log       *logger.Logger

	mu  sync.Mutex
	enc *json.Encoder
}

// New creates a server backed by completer
func New(completer Completer, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{completer: completer, log: log}
}

// Serve reads r until EOF or ctx is done, and waits for in-flight requests
// before returning.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	s.enc = json.NewEncoder(w)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var wg sync.WaitGroup
	defer wg.Wait()

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req completion.Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn().Err(err).Msg("Invalid request")
			s.write(Response{
				ID:    recoverID(line),
				Items: []completion.Suggestion{},
				Error: fmt.Sprintf("invalid request: %v", err),
			})
			continue
		}

		wg.Add(1)
		go func(req completion.Request) {
			defer wg.Done()
			result := s.completer.Complete(ctx, req)
			s.write(Response{ID: req.ID, Items: result.Suggestions})
		}(req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requests: %w", err)
	}
	return nil
}

func (s *Server) write(resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(resp); err != nil {
		s.log.Error().Err(err).Msg("Failed to write response")
	}
}

// recoverID extracts a numeric id from a request that failed to decode,
// e.g. because another field has the wrong type.
func recoverID(line []byte) int64 {
	var partial struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(line, &partial); err != nil || len(partial.ID) == 0 || string(partial.ID) == "null" {
		return InvalidRequestID
	}

	var id int64
	if err := json.Unmarshal(partial.ID, &id); err != nil {
		return InvalidRequestID
	}
	return id
}
