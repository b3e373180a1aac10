package permission

import "sync"

// AgentPolicy is the subset of an agent's configuration that
// Manager.Check needs to evaluate a tool's permission (spec.md §4.5).
// It is expressed independently of internal/agent.Agent (which itself
// depends on this package) rather than as a parameter typed on that
// package, so the two packages don't form an import cycle.
type AgentPolicy struct {
	// DeniedTools is step 1: any tool_id present here is always Deny,
	// regardless of every other field.
	DeniedTools map[string]bool
	// AllowedTools is step 2: when non-empty it is a whitelist — any
	// tool_id absent from it is Deny.
	AllowedTools map[string]bool
	// Permissions is step 3: an explicit tool_id -> action override.
	Permissions map[string]PermissionAction
	// Default is step 5: the fallback when no earlier step, and no
	// runtime cache entry, decides the outcome.
	Default PermissionAction
	// DoomLoop is the action CheckCall applies when the doom-loop
	// detector flags a repeated identical call that an earlier step
	// did not already Deny. Empty defaults to Ask.
	DoomLoop PermissionAction
}

// Manager evaluates tool permissions as a pure function of
// (tool_id, AgentPolicy, runtime cache), per spec.md §4.5's five-step
// evaluation order, plus the doom-loop override CheckCall layers on top.
// The runtime cache and the doom-loop detector's call history are the
// only mutable, cross-call state; everything else is read-only input.
type Manager struct {
	mu       sync.RWMutex
	cache    map[string]PermissionAction
	doomLoop *DoomLoopDetector
}

// NewManager creates a Manager with an empty runtime grant cache and its
// own doom-loop detector.
func NewManager() *Manager {
	return &Manager{cache: make(map[string]PermissionAction), doomLoop: NewDoomLoopDetector()}
}

// Check returns the Permission for tool_id under policy, applying the
// five-step evaluation order: deny-list, allow-list, explicit map,
// cached runtime grant, then the policy default. First match wins.
func (m *Manager) Check(toolID string, policy AgentPolicy) PermissionAction {
	if policy.DeniedTools[toolID] {
		return ActionDeny
	}
	if len(policy.AllowedTools) > 0 && !policy.AllowedTools[toolID] {
		return ActionDeny
	}
	if action, ok := policy.Permissions[toolID]; ok {
		return action
	}
	if action, ok := m.cached(toolID); ok {
		return action
	}
	if policy.Default == "" {
		return ActionAsk
	}
	return policy.Default
}

// CheckCall layers doom-loop detection on top of Check: it applies the
// five-step evaluation first, and if that does not already Deny, asks the
// doom-loop detector whether (sessionID, toolID, input) repeats a recent
// identical call three or more times in a row. A detected loop overrides an
// Allow or Ask outcome with policy.DoomLoop (Ask if unset); an outright Deny
// from steps 1-5 is never overridden, since a call that's already refused
// cannot be escalated further. The second return value reports whether the
// doom-loop override fired, so callers can build an escalation prompt
// distinct from the ordinary permission-request flow.
func (m *Manager) CheckCall(sessionID, toolID string, input any, policy AgentPolicy) (action PermissionAction, isDoomLoop bool) {
	action = m.Check(toolID, policy)
	if action == ActionDeny {
		return action, false
	}
	if !m.doomLoop.Check(sessionID, toolID, input) {
		return action, false
	}
	if policy.DoomLoop == "" {
		return ActionAsk, true
	}
	return policy.DoomLoop, true
}

func (m *Manager) cached(toolID string) (PermissionAction, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	action, ok := m.cache[toolID]
	return action, ok
}

// Grant records an "always allow" runtime decision for tool_id, as the
// UI calls after a user accepts an Ask prompt with "always allow".
func (m *Manager) Grant(toolID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[toolID] = ActionAllow
}

// Deny records an "always deny" runtime decision for tool_id.
func (m *Manager) Deny(toolID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[toolID] = ActionDeny
}

// ClearCache empties the runtime grant cache.
func (m *Manager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]PermissionAction)
}
