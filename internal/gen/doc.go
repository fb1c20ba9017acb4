// Package gen generates explicit descriptor registrations.
//
// The generated file declares one props.Descriptor per type, built with
// props.MustDescriptor and props.Op, so the property index of a type can be
// built without reflecting over it at run time. Source is produced with
// github.com/dave/jennifer, which also formats it.
//
// Operations whose types cannot be spelled from the generated package
// (function, channel and non-empty anonymous interface types, unexported
// types of other packages, generic instantiations) are skipped and reported.
package gen
