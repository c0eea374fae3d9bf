// Package sample provides the declarative catalog behind the demo CLI.
//
// A samples file is YAML describing values to build and inspect:
//
//	samples:
//	  - name: greeting
//	    kind: string
//	    text: "Hello, world!"
//	  - name: buf
//	    kind: bytes
//	    bytes: [1, 2, 3, 4]
//	    capacity: 8
//
// Files are schema-checked against an embedded CUE schema before they
// are decoded, so malformed catalogs fail with positioned errors
// instead of building garbage values. Building a sample materializes
// the value and takes its snapshots through the memview core.
package sample
