package v1

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const verifyTimeout = 5 * time.Second

// VerifyCheck is the outcome of one connectivity check.
type VerifyCheck struct {
	Name       string `json:"name"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// VerifyResponse is the response for GET /verify.
type VerifyResponse struct {
	Checked int           `json:"checked"`
	Passed  int           `json:"passed"`
	Checks  []VerifyCheck `json:"checks"`
}

// verify runs every configured check concurrently. It answers 503 when any
// check fails.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), verifyTimeout)
	defer cancel()

	resp := VerifyResponse{
		Checked: len(s.deps.Checks),
		Checks:  make([]VerifyCheck, len(s.deps.Checks)),
	}

	var wg sync.WaitGroup
	for i, c := range s.deps.Checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := c.Check(ctx)
			res := VerifyCheck{
				Name:       c.Name(),
				OK:         err == nil,
				DurationMS: time.Since(start).Milliseconds(),
			}
			if err != nil {
				res.Error = err.Error()
			}
			resp.Checks[i] = res
		}()
	}
	wg.Wait()

	for _, c := range resp.Checks {
		if c.OK {
			resp.Passed++
		}
	}

	code := http.StatusOK
	if resp.Passed < resp.Checked {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
