// Package analyze builds property descriptors statically, without running the
// analyzed code.
//
// It uses golang.org/x/tools/go/packages with go/types to enumerate the
// exported method set of every exported named type in the loaded packages,
// producing the same operation lists props.DescriptorOf would produce at run
// time.
//
// Key types:
//   - TypeID: package import path + type name
//   - GoType: a go/types.Type usable as a props.Type
//   - Graph: descriptors and package information of one load
package analyze
