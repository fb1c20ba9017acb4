package props

import (
	"reflect"

	"propindex/primitive"
)

// Type is the model accessor types are matched against. Implementations only
// compare as assignable with types of the same implementation.
type Type interface {
	String() string
	// AssignableTo reports whether a value of this type may be assigned to u.
	AssignableTo(u Type) bool
	// Primitive reports the primitive kind carried by the type, if any, and
	// whether the type is the boxed form of that kind.
	Primitive() (kind primitive.KindEnum, boxed bool)
}

// TypeOf adapts a reflect.Type. It returns nil for a nil rtype so the result can
// be passed directly as "no expected type".
func TypeOf(rtype reflect.Type) Type {
	if rtype == nil {
		return nil
	}

	return reflectType{rtype: rtype}
}

// TypeFor returns the Type of T.
func TypeFor[T any]() Type {
	return TypeOf(reflect.TypeFor[T]())
}

type reflectType struct {
	rtype reflect.Type
}

var _ Type = reflectType{}

func (r reflectType) String() string {
	return r.rtype.String()
}

func (r reflectType) AssignableTo(u Type) bool {
	other, ok := u.(reflectType)
	return ok && r.rtype.AssignableTo(other.rtype)
}

func (r reflectType) Primitive() (primitive.KindEnum, bool) {
	return primitive.FromReflectType(r.rtype)
}

// Reflect returns the adapted reflect.Type.
func (r reflectType) Reflect() reflect.Type {
	return r.rtype
}

// boxes reports whether one of the types is the primitive form and the other
// the boxed form of the same kind.
func boxes(a, b Type) bool {
	ak, aBoxed := a.Primitive()
	bk, bBoxed := b.Primitive()

	return ak.IsValid() && ak == bk && aBoxed != bBoxed
}
