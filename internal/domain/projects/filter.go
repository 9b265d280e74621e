package projects

const (
	CostFree   = "free"
	CostLow    = "low"
	CostMedium = "medium"
	CostHigh   = "high"
)

// ListFilter narrows the open-project listing. Values match exactly and
// zero values mean "unconstrained"; an unrecognized Cost is ignored.
type ListFilter struct {
	Cost       string
	Difficulty string
	Category   string
}

// Predicate is one parameterized WHERE fragment. Clauses use "?"
// placeholders and reference the projects table as "projects".
type Predicate struct {
	Clause string
	Args   []any
}

// Predicates returns the conjunctive clauses for f, in a stable order.
func (f ListFilter) Predicates() []Predicate {
	predicates := []Predicate{{Clause: "projects.status = ?", Args: []any{StatusOpen}}}

	if p, ok := costPredicate(f.Cost); ok {
		predicates = append(predicates, p)
	}
	if f.Difficulty != "" {
		predicates = append(predicates, Predicate{Clause: "projects.difficulty = ?", Args: []any{f.Difficulty}})
	}
	if f.Category != "" {
		predicates = append(predicates, Predicate{Clause: "projects.category = ?", Args: []any{f.Category}})
	}

	return predicates
}

// Matches reports whether p satisfies f. It is the in-memory twin of
// Predicates.
func (f ListFilter) Matches(p Project) bool {
	if p.Status != StatusOpen {
		return false
	}
	if !costMatches(f.Cost, p.Budget) {
		return false
	}
	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	if f.Category != "" && (p.Category == nil || *p.Category != f.Category) {
		return false
	}
	return true
}

func costPredicate(cost string) (Predicate, bool) {
	switch cost {
	case CostFree:
		return Predicate{Clause: "projects.budget = ?", Args: []any{0}}, true
	case CostLow:
		return Predicate{Clause: "projects.budget BETWEEN ? AND ?", Args: []any{1, 1000}}, true
	case CostMedium:
		return Predicate{Clause: "projects.budget BETWEEN ? AND ?", Args: []any{1001, 5000}}, true
	case CostHigh:
		return Predicate{Clause: "projects.budget > ?", Args: []any{5000}}, true
	default:
		return Predicate{}, false
	}
}

func costMatches(cost string, budget *float64) bool {
	switch cost {
	case CostFree:
		return budget != nil && *budget == 0
	case CostLow:
		return budget != nil && *budget >= 1 && *budget <= 1000
	case CostMedium:
		return budget != nil && *budget >= 1001 && *budget <= 5000
	case CostHigh:
		return budget != nil && *budget > 5000
	default:
		return true
	}
}
