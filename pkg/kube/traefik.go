package kube

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// IngressRoute is the Traefik HTTP router resource (traefik.io/v1alpha1).
type IngressRoute struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec IngressRouteSpec `json:"spec"`
}

type IngressRouteSpec struct {
	EntryPoints []string `json:"entryPoints,omitempty"`
	Routes      []Route  `json:"routes"`
	TLS         *TLS     `json:"tls,omitempty"`
}

type Route struct {
	// Kind is always "Rule" for HTTP routers.
	Kind     string         `json:"kind"`
	Match    string         `json:"match"`
	Services []RouteService `json:"services,omitempty"`
}

type RouteService struct {
	Name string `json:"name"`
	Port int32  `json:"port"`
}

// TLS enables TLS termination on an HTTP router. We rely on the entry
// point's default certificate resolver, so the struct stays empty.
type TLS struct{}

// IngressRouteTCP is the Traefik TCP router resource (traefik.io/v1alpha1).
type IngressRouteTCP struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec IngressRouteTCPSpec `json:"spec"`
}

type IngressRouteTCPSpec struct {
	EntryPoints []string   `json:"entryPoints,omitempty"`
	Routes      []RouteTCP `json:"routes"`
	TLS         *TLSTCP    `json:"tls,omitempty"`
}

type RouteTCP struct {
	Match    string            `json:"match"`
	Services []RouteTCPService `json:"services,omitempty"`
}

type RouteTCPService struct {
	Name string `json:"name"`
	Port int32  `json:"port"`
}

type TLSTCP struct {
	Passthrough bool `json:"passthrough"`
}
