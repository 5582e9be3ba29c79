// Package shazamqcluster reconciles ShazamqCluster resources.
//
// Each reconcile cycle synthesizes four subordinate objects from the
// resolved spec — the generated broker configuration, a client Service, a
// headless discovery Service, and the broker StatefulSet — applies them in
// that fixed order with server-side apply, then projects the observed
// StatefulSet health onto the cluster's status subresource.
//
// Every apply is idempotent and the reconciler keeps no state across
// invocations, so a cycle interrupted at any step converges on the next one.
package shazamqcluster
