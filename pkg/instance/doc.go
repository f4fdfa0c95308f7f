// Package instance manages the lifecycle of challenge instances. Each
// instance is a cluster namespace named challenge-<id>-instance-<12 hex>
// and labelled with its challenge and actor; the package allocates those
// namespaces under a per-actor quota, reports their state, deploys the
// translated challenge objects into them and tears them down.
package instance
