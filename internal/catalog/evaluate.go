package catalog

import (
	"time"

	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/pkg/datemath"
)

// Evaluator applies structured filters to catalog records.
type Evaluator struct {
	dates *datemath.Parser
}

func NewEvaluator(dates *datemath.Parser) *Evaluator {
	return &Evaluator{dates: dates}
}

// Evaluate returns the records matching every condition in the filter.
// Conditions are ANDed; an empty filter matches everything. A condition
// that cannot be evaluated against a record excludes that record rather
// than letting it through.
func (e *Evaluator) Evaluate(records []model.CourseRecord, f Filter, now time.Time) []model.CourseRecord {
	if len(f) == 0 {
		return records
	}

	out := make([]model.CourseRecord, 0, len(records))
	for _, r := range records {
		if e.matches(r, f, now) {
			out = append(out, r)
		}
	}
	return out
}

func (e *Evaluator) matches(r model.CourseRecord, f Filter, now time.Time) bool {
	for field, cond := range f {
		val, ok := fieldValue(r, field)
		if !ok {
			return false
		}
		if !e.matchCondition(val, cond, now) {
			return false
		}
	}
	return true
}

func (e *Evaluator) matchCondition(val, cond interface{}, now time.Time) bool {
	switch c := cond.(type) {
	case map[string]interface{}:
		for op, arg := range c {
			if !e.matchOp(val, op, arg, now) {
				return false
			}
		}
		return true
	case []interface{}:
		for _, item := range c {
			if looseEqual(val, item) {
				return true
			}
		}
		return false
	default:
		return looseEqual(val, cond)
	}
}

func (e *Evaluator) matchOp(val interface{}, op string, arg interface{}, now time.Time) bool {
	switch op {
	case opGte, opLte:
		rv, ok1 := toFloat(val)
		av, ok2 := toFloat(arg)
		if !ok1 || !ok2 {
			return false
		}
		if op == opGte {
			return rv >= av
		}
		return rv <= av
	case opAfter, opBefore:
		rs, ok1 := val.(string)
		as, ok2 := arg.(string)
		if !ok1 || !ok2 {
			return false
		}
		rt, err := e.dates.ParseDate(rs, now)
		if err != nil {
			return false
		}
		at, err := e.dates.ParseDate(as, now)
		if err != nil {
			return false
		}
		// Both bounds are strict: a record dated exactly on the bound
		// does not match.
		if op == opAfter {
			return rt.After(at)
		}
		return rt.Before(at)
	default:
		return false
	}
}

// looseEqual compares a record value with a filter value, coercing
// numbers so a JSON 4 matches an int field. Strings compare exactly.
func looseEqual(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	as, ok1 := a.(string)
	bs, ok2 := b.(string)
	if ok1 && ok2 {
		return as == bs
	}
	ab, ok1 := a.(bool)
	bb, ok2 := b.(bool)
	return ok1 && ok2 && ab == bb
}
