// Package scanconfig defines which macros and environments the reference
// scanner recognizes. The sets are static configuration: they come from
// built-in defaults or an HCL file, never from the scanned documents.
package scanconfig
