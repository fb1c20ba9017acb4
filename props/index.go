package props

import (
	"fmt"
	"slices"
	"strings"

	"propindex/internal/naming"
)

// resourceProperty is always listed first by Properties.
const resourceProperty = "resource"

// Index answers property and method lookups for one type. It is immutable
// once built and safe for concurrent use.
type Index struct {
	typeName string
	methods  *multimap
	getters  *multimap
	setters  *multimap
}

// Build classifies every operation of d:
//   - every operation is a method, under its exact name;
//   - a nullary operation prefixed with get/is, or named after a derived
//     property, is a getter of the derived property name;
//   - a unary operation prefixed with set is a setter of the name without
//     the prefix.
//
// Operations sharing a name keep their discovery order.
func Build(d *Descriptor) (*Index, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	methods, getters, setters := newMultimap(), newMultimap(), newMultimap()

	for _, op := range d.Operations {
		op = op.clone()
		methods.put(op.Name, op)

		switch op.Arity() {
		case 0:
			if property, ok := naming.GetterProperty(op.Name); ok {
				getters.put(property, op)
			}
		case 1:
			if property, ok := naming.SetterProperty(op.Name); ok {
				setters.put(property, op)
			}
		}
	}

	return &Index{
		typeName: d.String(),
		methods:  methods.seal(),
		getters:  getters.seal(),
		setters:  setters.seal(),
	}, nil
}

// TypeName returns the qualified name of the indexed type.
func (ix *Index) TypeName() string {
	return ix.typeName
}

// Properties returns every readable property, in the order their first getter
// was discovered, except that a property named "resource" (in any case) is
// moved to the front.
func (ix *Index) Properties() []string {
	properties := make([]string, 0, ix.getters.len())

	for _, name := range ix.getters.names {
		if strings.EqualFold(name, resourceProperty) {
			properties = slices.Insert(properties, 0, name)
		} else {
			properties = append(properties, name)
		}
	}

	return properties
}

// WritableProperties returns the distinct setter property names in discovery order.
func (ix *Index) WritableProperties() []string {
	return slices.Clone(ix.setters.names)
}

// MethodNames returns the distinct method names in discovery order.
func (ix *Index) MethodNames() []string {
	return slices.Clone(ix.methods.names)
}

// Getters returns every getter candidate registered for property, without the
// lax fallback. The operations are copies.
func (ix *Index) Getters(property string) []Operation {
	return cloneOps(ix.getters.get(property))
}

// Setters returns every setter candidate registered for property, without the
// lax fallback. The operations are copies.
func (ix *Index) Setters(property string) []Operation {
	return cloneOps(ix.setters.get(property))
}
