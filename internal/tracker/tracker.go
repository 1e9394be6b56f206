// Package tracker provides load-balanced agent assignment over a
// per-agent workload ledger.
package tracker

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/internal/selector"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

// entry is one agent's mutable ledger row.
type entry struct {
	assigned int
	active   bool
}

// Tracker assigns agents to issues while balancing load across agents.
// The ledger is the only mutable state in the module; every read-modify-write
// runs under the tracker's mutex so concurrent hosts never lose updates.
type Tracker struct {
	selector *selector.Selector
	tun      config.AssignmentTunables
	log      zerolog.Logger

	mu      sync.Mutex
	entries map[models.Agent]*entry
	// issued records which (issue, agent) pairs are outstanding, so a
	// release for a pair never assigned stays a no-op.
	issued map[string]models.Agent
}

// AssignOptions controls a single assignment.
type AssignOptions struct {
	// BalanceLoad picks the least-loaded agent among the top-ranked
	// fitting candidates instead of always the top candidate.
	BalanceLoad bool
}

// New creates a Tracker with a zeroed ledger entry per agent.
func New(sel *selector.Selector, tun config.AssignmentTunables, log zerolog.Logger) *Tracker {
	t := &Tracker{
		selector: sel,
		tun:      tun,
		log:      log,
		entries:  make(map[models.Agent]*entry),
		issued:   make(map[string]models.Agent),
	}
	for _, a := range models.AllAgents() {
		t.entries[a] = &entry{}
	}
	return t
}

// Assign classifies the issue, ranks candidate agents, picks one, and
// increments its workload. With BalanceLoad the pick is the least-loaded
// agent among the top candidates, so the specialist still receives the
// largest share in aggregate while bursts spread across agents.
func (t *Tracker) Assign(issue models.Issue, opts AssignOptions) (models.AgentAssignment, error) {
	result, err := t.selector.Select(issue.Title, issue.Description, nil)
	if err != nil {
		return models.AgentAssignment{}, fmt.Errorf("selecting agent for issue %s: %w", issue.ID, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	chosen := result.Recommended
	reasoning := result.Reasoning

	if opts.BalanceLoad {
		topN := t.tun.BalanceTopN
		candidates := append([]models.Agent{result.Recommended}, result.Alternatives...)
		if topN > len(candidates) {
			topN = len(candidates)
		}
		// Reroute only to a candidate at least two tasks lighter, so the
		// specialist keeps the larger aggregate share instead of a pure
		// round robin.
		for _, c := range candidates[:topN] {
			if t.entries[c].assigned+2 <= t.entries[chosen].assigned {
				chosen = c
			}
		}
		if chosen != result.Recommended {
			reasoning = fmt.Sprintf("%s; rerouted to %s to balance load", reasoning, chosen)
		}
	}

	t.entries[chosen].assigned++
	t.issued[issueKey(issue.ID, chosen)] = chosen

	t.log.Debug().
		Str("issue", issue.ID).
		Str("agent", string(chosen)).
		Int("workload", t.entries[chosen].assigned).
		Bool("balanced", opts.BalanceLoad).
		Msg("assigned agent")

	return models.AgentAssignment{
		Agent:      chosen,
		Confidence: result.Confidence,
		Reasoning:  reasoning,
	}, nil
}

// Release returns an assignment's slot to the ledger. Releasing a pair that
// was never assigned, or releasing twice, is a no-op; counters never go
// below zero.
func (t *Tracker) Release(issueID string, agent models.Agent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := issueKey(issueID, agent)
	if _, ok := t.issued[key]; !ok {
		return
	}
	delete(t.issued, key)

	e, ok := t.entries[agent]
	if !ok || e.assigned == 0 {
		return
	}
	e.assigned--

	t.log.Debug().
		Str("issue", issueID).
		Str("agent", string(agent)).
		Int("workload", e.assigned).
		Msg("released assignment")
}

// MarkActive toggles an agent's reporting-only active flag.
func (t *Tracker) MarkActive(agent models.Agent, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[agent]; ok {
		e.active = active
	}
}

// Workloads returns a snapshot of the ledger in stable agent order.
func (t *Tracker) Workloads() []models.WorkloadEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.WorkloadEntry, 0, len(t.entries))
	for _, a := range models.AllAgents() {
		e := t.entries[a]
		out = append(out, models.WorkloadEntry{
			Agent:         a,
			AssignedTasks: e.assigned,
			Active:        e.active,
		})
	}
	return out
}

// Stats returns aggregate assignment statistics. TotalAssignments always
// equals the sum of the per-agent outstanding counts.
func (t *Tracker) Stats() models.AssignmentStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := models.AssignmentStats{ByAgent: make(map[models.Agent]int, len(t.entries))}
	for _, a := range models.AllAgents() {
		e := t.entries[a]
		stats.ByAgent[a] = e.assigned
		stats.TotalAssignments += e.assigned
		if e.active {
			stats.ActiveAgents++
		}
	}
	return stats
}

// Reset zeroes the ledger, clearing counts, flags, and issued pairs.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		e.assigned = 0
		e.active = false
	}
	t.issued = make(map[string]models.Agent)
}

func issueKey(issueID string, agent models.Agent) string {
	return issueID + ":" + string(agent)
}
