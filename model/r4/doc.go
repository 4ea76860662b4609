// Package r4 provides the immutable object model for FHIR release R4.
//
// Nodes are created with builders. Required elements are passed to the builder constructor,
// everything else is set with fluent setters. Build validates the node and either returns it
// or all violated constraints joined into one error:
//
//	ae, err := r4.NewAdverseEventBuilder(
//		r4.NewCoded(r4.AdverseEventActualityActual),
//		r4.Must(r4.NewReferenceBuilder().Reference(r4.Must(r4.NewString("Patient/123"))).Build()),
//	).Build()
//
// Built nodes never change. Getters of repeated elements return copies, use ToBuilder
// to derive a modified node. Nodes are safe for concurrent use.
package r4
