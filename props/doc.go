// Package props indexes the accessor methods of a type by property name.
//
// An Index is built once per type from a Descriptor, the ordered list of the
// type's public operations, and classifies every operation into three
// case-insensitive buckets: all methods, getters (nullary, get/is prefix or a
// derived property name) and setters (unary, set prefix). Lookups answer with
// the first candidate whose type is compatible with the expected one, retrying
// once with underscores removed from the property name.
//
// Descriptors come from runtime reflection (DescriptorOf), from explicit
// registration (NewDescriptor, usually generated code), or from static
// analysis of Go packages. Built indices are immutable; For caches one index
// per reflect.Type for the lifetime of the process.
//
// Key types:
//   - Type: what accessor parameter and result types are compared with
//   - Operation: one public method of the indexed type
//   - Descriptor: the operation set of one type
//   - Index: the built, read-only property index
package props
