package tracing

import (
	"fmt"
	"go/token"
	"sync"

	"github.com/sirkon/irrelevant/internal/irrules"
)

// Reporter collects inconsistencies discovered during analysis.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    ReportPhase
	RuleCode irrules.Rule
	Pos      token.Pos
	Message  string
}

// ReportPhase marks the analysis stage where a report was generated.
type ReportPhase int

const (
	reportPhaseInvalid ReportPhase = iota
	ReportScrap                    // directive collection and classification
	ReportTrace                    // uses of discarded values
)

func (p ReportPhase) String() string {
	switch p {
	case ReportScrap:
		return "scrap"
	case ReportTrace:
		return "trace"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// ReporterPhase binds a Reporter to a fixed phase.
// It is used during an entire analysis pass to record rule violations
// without specifying the phase repeatedly.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a phase-bound reporter that automatically sets the given phase
// for all reports produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new rule violation under the bound phase.
// Rule description is used when the message is empty.
func (rp *ReporterPhase) Report(rule irrules.Rule, message string, pos token.Pos) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Pos:      pos,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}
