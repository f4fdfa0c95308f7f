// Package kube defines lightweight representations of the third-party
// custom resources the translator emits (Traefik ingress routes, Cilium
// network policies, KubeVirt virtual machines) together with the dynamic
// client plumbing to create them.
//
// The structs carry exactly the fields we set. Pulling in the upstream
// client modules for Traefik, Cilium and KubeVirt would add three large
// dependency trees for what amounts to a handful of nested maps; the
// objects are only ever written, never read back.
package kube
