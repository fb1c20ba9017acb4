// Package primitive classifies the eight primitive value kinds and their
// boxed (pointer) forms.
//
// Only the exact predeclared types bool, uint16, int8, int16, int32 (rune),
// int64, float32 and float64 are primitives. Go's int, uint, byte (uint8),
// uint32 and uint64, and named types over any basic type, are not, so an
// accessor such as SetCount(int) gets no boxing equivalence with *int.
package primitive

import (
	"go/types"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is one of the eight primitive value kinds that have a boxed counterpart.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean
	KindChar
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// primitives holds the Go representation of every primitive form, indexed by kind.
// Char is unsigned 16 bit and byte is signed 8 bit.
var primitives = [KindTotal]reflect.Type{
	KindBoolean: reflect.TypeOf(false),
	KindChar:    reflect.TypeOf(uint16(0)),
	KindByte:    reflect.TypeOf(int8(0)),
	KindShort:   reflect.TypeOf(int16(0)),
	KindInt:     reflect.TypeOf(int32(0)),
	KindLong:    reflect.TypeOf(int64(0)),
	KindFloat:   reflect.TypeOf(float32(0)),
	KindDouble:  reflect.TypeOf(float64(0)),
}

var basicKinds = map[types.BasicKind]KindEnum{
	types.Bool:    KindBoolean,
	types.Uint16:  KindChar,
	types.Int8:    KindByte,
	types.Int16:   KindShort,
	types.Int32:   KindInt,
	types.Int64:   KindLong,
	types.Float32: KindFloat,
	types.Float64: KindDouble,
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Type returns the primitive form of the kind, or nil for an invalid kind.
func (k KindEnum) Type() reflect.Type {
	if !k.IsValid() {
		return nil
	}

	return primitives[k]
}

// Boxed returns the boxed (pointer) form of the kind, or nil for an invalid kind.
func (k KindEnum) Boxed() reflect.Type {
	if !k.IsValid() {
		return nil
	}

	return reflect.PointerTo(primitives[k])
}

// FromReflectType classifies rtype. A pointer to a primitive reports the kind
// with boxed set. Named types never qualify, even when their underlying type does.
func FromReflectType(rtype reflect.Type) (kind KindEnum, boxed bool) {
	if rtype == nil {
		return 0, false
	}

	if rtype.Kind() == reflect.Pointer {
		if k := exactReflect(rtype.Elem()); k != 0 {
			return k, true
		}

		return 0, false
	}

	return exactReflect(rtype), false
}

func exactReflect(rtype reflect.Type) KindEnum {
	for k := KindBoolean; int(k) < KindTotal; k++ {
		if primitives[k] == rtype {
			return k
		}
	}

	return 0
}

// FromGoType is the go/types counterpart of FromReflectType.
func FromGoType(t types.Type) (kind KindEnum, boxed bool) {
	if t == nil {
		return 0, false
	}

	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		if k := exactGo(ptr.Elem()); k != 0 {
			return k, true
		}

		return 0, false
	}

	return exactGo(t), false
}

func exactGo(t types.Type) KindEnum {
	basic, ok := types.Unalias(t).(*types.Basic)
	if !ok {
		return 0
	}

	return basicKinds[basic.Kind()]
}
