package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"proposal_governance_system/internal/governance"
)

const (
	FunctionImplementApproved = "implement-approved-proposal"
	FunctionRejectionFeedback = "generate-rejection-feedback"

	functionAttempts = 3
	functionTimeout  = 30 * time.Second
)

// FunctionsDispatcher invokes the named downstream function for each decision.
type FunctionsDispatcher struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryDelay time.Duration
}

func NewFunctionsDispatcher(baseURL, token string) *FunctionsDispatcher {
	return &FunctionsDispatcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: functionTimeout},
		retryDelay: time.Second,
	}
}

func FunctionFor(decision governance.Decision) string {
	if decision == governance.DecisionApproved {
		return FunctionImplementApproved
	}
	return FunctionRejectionFeedback
}

func (d *FunctionsDispatcher) Dispatch(ctx context.Context, outcome Outcome) error {
	name := FunctionFor(outcome.Decision)

	payload, err := json.Marshal(map[string]string{"proposal_id": outcome.ProposalID})
	if err != nil {
		return err
	}

	delay := d.retryDelay
	for attempt := 1; ; attempt++ {
		status, err := d.invoke(ctx, name, payload)
		if err == nil {
			return nil
		}
		if attempt == functionAttempts || (status != 0 && status != http.StatusTooManyRequests && status < http.StatusInternalServerError) {
			return fmt.Errorf("failed to invoke %s for proposal %s: %w", name, outcome.ProposalID, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}

func (d *FunctionsDispatcher) invoke(ctx context.Context, name string, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/"+name, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, fmt.Errorf("status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}
