package props

import "propindex/internal/naming"

// matcher reports whether candidate accepts or yields a value of the expected type.
type matcher func(candidate Operation, expected Type) bool

// Getter resolves the getter of property. With a nil expected type the first
// discovered candidate wins; otherwise the first whose result type is
// assignable to expected, or differs from it only by boxing. When nothing
// matches, the lookup is retried once with underscores removed from property.
func (ix *Index) Getter(property string, expected Type) (Operation, bool) {
	return resolve(ix.getters, property, expected, getterMatches)
}

// Setter resolves the setter of property the same way Getter does, comparing
// expected against the setter's parameter type.
func (ix *Index) Setter(property string, expected Type) (Operation, bool) {
	return resolve(ix.setters, property, expected, setterMatches)
}

// Method returns the first discovered method called name, ignoring case.
func (ix *Index) Method(name string) (Operation, bool) {
	candidates := ix.methods.get(name)
	if len(candidates) == 0 {
		return Operation{}, false
	}

	return candidates[0].clone(), true
}

func resolve(m *multimap, property string, expected Type, matches matcher) (Operation, bool) {
	candidates := m.get(property)

	if len(candidates) > 0 && expected == nil {
		return candidates[0].clone(), true
	}

	for _, candidate := range candidates {
		if matches(candidate, expected) {
			return candidate.clone(), true
		}
	}

	// Lax is idempotent: the second pass never recurses again.
	if lax := naming.Lax(property); lax != property {
		return resolve(m, lax, expected, matches)
	}

	return Operation{}, false
}

func getterMatches(candidate Operation, expected Type) bool {
	target := candidate.Result
	if target == nil {
		return false
	}

	return target.AssignableTo(expected) || boxes(target, expected)
}

func setterMatches(candidate Operation, expected Type) bool {
	target := candidate.Params[0]

	return expected.AssignableTo(target) || boxes(target, expected)
}
