// Package compose parses the supported subset of the compose file format
// and translates each service into the cluster objects that make up one
// challenge instance: a Deployment, a headless DNS Service, an optional
// proxied Service for published ports, Traefik ingress routes, SSH gateway
// resources, PVCs, KubeVirt virtual machines and Cilium network policies.
//
// The parser is strict: properties that cannot be translated faithfully
// (host networking, build instructions, kernel tunables) are rejected with
// a PropertyNotSupported error instead of being silently dropped.
package compose
