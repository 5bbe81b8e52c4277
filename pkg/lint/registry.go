package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/tokenguard/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]ClassRule),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]ClassRule // keyed by ID
}

// RegisterRule adds a rule to the global registry. A later registration with
// the same ID replaces the earlier one.
func RegisterRule(rule ClassRule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID()] = rule
}

// GetAllRules returns all registered rules sorted by ID.
func GetAllRules() []ClassRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]ClassRule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetRuleByID returns a rule by its ID.
func GetRuleByID(id string) (ClassRule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetRulesByGroup returns all rules in a specific group, sorted by ID.
func GetRulesByGroup(group string) []ClassRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []ClassRule
	for _, rule := range globalRegistry.rules {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// GetRulesByCategory returns the rules reporting on a category, sorted by ID.
func GetRulesByCategory(category core.Category) []ClassRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []ClassRule
	for _, rule := range globalRegistry.rules {
		if rule.Category() == category {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// AllRules returns metadata for all registered rules, sorted by ID.
func AllRules() []core.RuleInfo {
	rules := GetAllRules()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// ClearRegistry removes all registered rules. Used for testing.
func ClearRegistry() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]ClassRule)
}

func sortRules(rules []ClassRule) {
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
}
