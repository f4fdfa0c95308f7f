package kube

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// CiliumNetworkPolicy is the Cilium policy resource (cilium.io/v2).
type CiliumNetworkPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec *PolicyRule `json:"spec,omitempty"`
}

// PolicyRule selects a set of endpoints and constrains their traffic.
type PolicyRule struct {
	Description      string              `json:"description,omitempty"`
	EndpointSelector EndpointSelector    `json:"endpointSelector"`
	Ingress          []IngressPolicyRule `json:"ingress,omitempty"`
	Egress           []EgressPolicyRule  `json:"egress,omitempty"`
}

type EndpointSelector struct {
	MatchLabels map[string]string `json:"matchLabels,omitempty"`
}

type IngressPolicyRule struct {
	FromEntities []string   `json:"fromEntities,omitempty"`
	ToPorts      []PortRule `json:"toPorts,omitempty"`
}

type EgressPolicyRule struct {
	ToEndpoints []EndpointSelector `json:"toEndpoints,omitempty"`
	ToPorts     []PortRule         `json:"toPorts,omitempty"`
}

type PortRule struct {
	Ports []PortProtocol `json:"ports,omitempty"`
	Rules *L7Rules       `json:"rules,omitempty"`
}

type PortProtocol struct {
	Port     string `json:"port"`
	Protocol string `json:"protocol,omitempty"`
}

type L7Rules struct {
	DNS []DNSRule `json:"dns,omitempty"`
}

type DNSRule struct {
	MatchPattern string `json:"matchPattern,omitempty"`
}
