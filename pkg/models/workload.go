package models

// WorkloadEntry is one agent's row in the assignment tracker's ledger.
type WorkloadEntry struct {
	// Agent is the backend this entry tracks.
	Agent Agent `json:"agent"`
	// AssignedTasks counts outstanding (non-released) assignments. Never negative.
	AssignedTasks int `json:"assigned_tasks"`
	// Active is a reporting-only flag toggled by the orchestrator.
	Active bool `json:"active"`
}

// AssignmentStats is an aggregate snapshot of the workload ledger.
type AssignmentStats struct {
	// TotalAssignments is the sum of outstanding assignments across agents.
	TotalAssignments int `json:"total_assignments"`
	// ActiveAgents counts agents currently flagged active.
	ActiveAgents int `json:"active_agents"`
	// ByAgent maps each agent to its outstanding assignment count.
	ByAgent map[Agent]int `json:"by_agent"`
}
