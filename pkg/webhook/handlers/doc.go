// Package handlers implements the admission control logic for ShazamqCluster
// resources.
//
// The defaulter makes the documented defaults explicit on the stored object,
// going through pkg/resolver so admission-time defaults are identical to the
// ones the reconciler applies. The validator enforces semantic rules that
// cannot be expressed in the OpenAPI schema, such as cross-field requirements
// between the mirroring flag and its source list.
package handlers
