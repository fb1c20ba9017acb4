package props

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

var (
	// ErrInvalidDescriptor is returned when a nil or malformed descriptor is provided.
	ErrInvalidDescriptor = errors.New("props: invalid type descriptor")
	// ErrInvalidOperation is returned when an operation has no name or a nil parameter type.
	ErrInvalidOperation = errors.New("props: invalid operation")
)

// Operation is one public method of an indexed type.
type Operation struct {
	Name   string
	Params []Type
	// Result is the first result type, nil when the operation returns nothing.
	Result Type
	// Index is the discovery position within the descriptor.
	Index int
	// Func is the method expression, set only for descriptors built by reflection.
	// Its first argument is the receiver.
	Func reflect.Value
}

// Op builds an Operation for explicit registration.
func Op(name string, result Type, params ...Type) Operation {
	return Operation{Name: name, Params: params, Result: result}
}

// Arity returns the number of parameters.
func (o Operation) Arity() int {
	return len(o.Params)
}

// String renders the operation as a Go-like signature, e.g. "SetName(string)".
func (o Operation) String() string {
	s := o.Name + "("
	for i, p := range o.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"

	if o.Result != nil {
		s += " " + o.Result.String()
	}

	return s
}

// clone returns o with its own copy of Params.
func (o Operation) clone() Operation {
	o.Params = slices.Clone(o.Params)
	return o
}

func cloneOps(ops []Operation) []Operation {
	if ops == nil {
		return nil
	}

	out := make([]Operation, len(ops))
	for i, op := range ops {
		out[i] = op.clone()
	}

	return out
}

// Descriptor lists the public operations of one type in discovery order.
type Descriptor struct {
	PkgPath    string
	Name       string
	Operations []Operation
}

// String returns the qualified type name.
func (d *Descriptor) String() string {
	if d.PkgPath == "" {
		return d.Name
	}

	return d.PkgPath + "." + d.Name
}

// NewDescriptor registers the operation set of a type explicitly. Operation
// indices are assigned from argument order.
func NewDescriptor(pkgPath, name string, ops ...Operation) (*Descriptor, error) {
	d := &Descriptor{
		PkgPath:    pkgPath,
		Name:       name,
		Operations: make([]Operation, len(ops)),
	}

	for i, op := range ops {
		op = op.clone()
		op.Index = i
		d.Operations[i] = op
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// MustDescriptor is like NewDescriptor but panics on error. It is meant for
// package-level registrations, including generated ones.
func MustDescriptor(pkgPath, name string, ops ...Operation) *Descriptor {
	d, err := NewDescriptor(pkgPath, name, ops...)
	if err != nil {
		panic(err)
	}

	return d
}

func (d *Descriptor) validate() error {
	for i, op := range d.Operations {
		if op.Name == "" {
			return fmt.Errorf("%w: %s: operation %d has no name", ErrInvalidOperation, d, i)
		}

		for j, p := range op.Params {
			if p == nil {
				return fmt.Errorf("%w: %s.%s: parameter %d has no type", ErrInvalidOperation, d, op.Name, j)
			}
		}
	}

	return nil
}

// DescriptorOf enumerates the exported methods of rtype. For a non-pointer,
// non-interface type the pointer method set is used, so pointer-receiver
// setters are discovered. Methods are listed in reflect order (sorted by name).
func DescriptorOf(rtype reflect.Type) (*Descriptor, error) {
	if rtype == nil {
		return nil, fmt.Errorf("%w: nil reflect.Type", ErrInvalidDescriptor)
	}

	base := rtype
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	d := &Descriptor{
		PkgPath: base.PkgPath(),
		Name:    base.Name(),
	}
	if d.Name == "" {
		d.Name = rtype.String()
	}

	set, receiver := rtype, 1
	switch rtype.Kind() {
	case reflect.Interface:
		receiver = 0
	case reflect.Pointer:
	default:
		set = reflect.PointerTo(rtype)
	}

	for i := range set.NumMethod() {
		m := set.Method(i)
		if !m.IsExported() {
			continue
		}

		params := make([]Type, 0, m.Type.NumIn()-receiver)
		for j := receiver; j < m.Type.NumIn(); j++ {
			params = append(params, TypeOf(m.Type.In(j)))
		}

		var result Type
		if m.Type.NumOut() > 0 {
			result = TypeOf(m.Type.Out(0))
		}

		d.Operations = append(d.Operations, Operation{
			Name:   m.Name,
			Params: params,
			Result: result,
			Index:  len(d.Operations),
			Func:   m.Func,
		})
	}

	return d, nil
}
