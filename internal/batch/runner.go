// Package batch drives one pass over a ticket-ID list, updating each
// ticket through the Freshservice API and collecting aggregate outcomes.
package batch

import (
	"context"

	"github.com/randy-hsiao/freshservice-automation/internal/config"
	"github.com/randy-hsiao/freshservice-automation/internal/freshservice"
	"github.com/randy-hsiao/freshservice-automation/internal/logging"
)

// TicketClient is the slice of the Freshservice API the runner uses.
type TicketClient interface {
	FetchTicket(ctx context.Context, id string) (*freshservice.Ticket, error)
	TriggerWorkflow(ctx context.Context, id string) error
}

// Status classifies the terminal state of one ticket.
type Status int

const (
	// StatusUpdated means the workflow-trigger write succeeded.
	StatusUpdated Status = iota
	// StatusSkipped means the pre-check found the sync already complete
	// and no write was issued.
	StatusSkipped
	// StatusFailed means the write (or its transport) failed.
	StatusFailed
)

// Outcome is the inspectable result of processing one ticket.
type Outcome struct {
	ID     string
	Status Status
	Err    error
}

// Result aggregates a whole run. Skipped tickets count as successes.
type Result struct {
	Succeeded int
	Failed    int
	Skipped   int
	FailedIDs []string
}

func (r *Result) record(o Outcome) {
	switch o.Status {
	case StatusUpdated:
		r.Succeeded++
	case StatusSkipped:
		r.Succeeded++
		r.Skipped++
	case StatusFailed:
		r.Failed++
		r.FailedIDs = append(r.FailedIDs, o.ID)
	}
}

// Runner processes one batch of tickets sequentially.
type Runner struct {
	client    TicketClient
	log       *logging.Logger
	pacer     Pacer
	strategy  string
	errorFile string
}

// NewRunner wires a runner from its collaborators. strategy is one of the
// config.Strategy* values; errorFile is where failed IDs are written.
func NewRunner(client TicketClient, log *logging.Logger, pacer Pacer, strategy, errorFile string) *Runner {
	return &Runner{
		client:    client,
		log:       log,
		pacer:     pacer,
		strategy:  strategy,
		errorFile: errorFile,
	}
}

// Process updates every ticket in ids in order, pausing between requests
// but not after the last one. Per-ticket failures are counted and recorded,
// never propagated; the returned Result is the authoritative tally.
// Cancelling the context stops the run at the next pause point.
func (r *Runner) Process(ctx context.Context, ids []string) Result {
	var result Result

	if len(ids) == 0 {
		r.log.Errorf("no valid ticket IDs found in CSV file")
		return result
	}

	total := len(ids)
	r.log.Infof("starting run with %d tickets", total)
	r.log.Infof("first ticket ID: %s", ids[0])
	r.log.Infof("last ticket ID: %s", ids[total-1])

	for i, id := range ids {
		r.log.Infof("progress: %d/%d (%.2f%%)", i+1, total, float64(i+1)/float64(total)*100)
		result.record(r.processTicket(ctx, id))

		if i+1 < total {
			if err := r.pacer.Wait(ctx); err != nil {
				r.log.Errorf("run cancelled after %d of %d tickets: %v", i+1, total, err)
				break
			}
		}
	}

	if len(result.FailedIDs) > 0 {
		if err := WriteFailureReport(r.errorFile, result.FailedIDs); err != nil {
			r.log.Errorf("failed to write failure report: %v", err)
		} else {
			r.log.Infof("failed ticket IDs written to: %s", r.errorFile)
		}
	}
	r.log.Infof("run complete. success: %d, failure: %d", result.Succeeded, result.Failed)
	return result
}

// processTicket runs the per-ticket state machine. Under the check-first
// strategy a fetch failure is not a gate: the write is attempted anyway.
func (r *Runner) processTicket(ctx context.Context, id string) Outcome {
	if r.strategy == config.StrategyCheckFirst {
		ticket, err := r.client.FetchTicket(ctx, id)
		if err != nil {
			r.log.Errorf("pre-check for ticket %s failed, updating anyway: %v", id, err)
		} else if ticket.SyncComplete() {
			r.log.Infof("ticket %s already synced (statuscode 200), skipping update", id)
			return Outcome{ID: id, Status: StatusSkipped}
		}
	}

	if err := r.client.TriggerWorkflow(ctx, id); err != nil {
		r.log.Errorf("failed to update ticket %s: %v", id, err)
		return Outcome{ID: id, Status: StatusFailed, Err: err}
	}
	r.log.Infof("successfully updated ticket %s", id)
	return Outcome{ID: id, Status: StatusUpdated}
}
