package compose

import (
	"strconv"

	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/plfanzen/plfanzen/pkg/kube"
	"github.com/plfanzen/plfanzen/pkg/log"
)

// otherParty names the peer a network policy rule applies to.
type otherParty string

const (
	partyChallenge  otherParty = "Challenge"
	partyCluster    otherParty = "Cluster"
	partyClusterDNS otherParty = "ClusterDns"
	partyWorld      otherParty = "World"
)

func (p *otherParty) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch v := otherParty(s); v {
	case partyChallenge, partyCluster, partyClusterDNS, partyWorld:
		*p = v
		return nil
	default:
		return errOther("Unknown network policy peer: %s", s)
	}
}

type policyProtocol string

const (
	protocolTCP policyProtocol = "TCP"
	protocolUDP policyProtocol = "UDP"
)

func (p *policyProtocol) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch v := policyProtocol(s); v {
	case protocolTCP, protocolUDP:
		*p = v
		return nil
	default:
		return errOther("Unknown network policy protocol: %s", s)
	}
}

// networkPolicyDoc mirrors the x-ctf-network-policy extension. Pointer
// fields distinguish absent sections from empty ones so required parts
// can be enforced.
type networkPolicyDoc struct {
	Incoming *networkRuleSet `yaml:"incoming"`
	Outgoing *networkRuleSet `yaml:"outgoing"`
}

type networkRuleSet struct {
	Rules *[]networkRule `yaml:"rules"`
}

type networkRule struct {
	OtherParty otherParty         `yaml:"other_party"`
	Ports      *[]networkPortRule `yaml:"ports"`
}

// party applies the default peer when the rule does not name one.
func (r networkRule) party() otherParty {
	if r.OtherParty == "" {
		return partyWorld
	}
	return r.OtherParty
}

type networkPortRule struct {
	Port      *uint16           `yaml:"port"`
	Protocols *[]policyProtocol `yaml:"protocols"`
}

func parseNetworkPolicy(node *yaml.Node) (*networkPolicyDoc, error) {
	var doc networkPolicyDoc
	if err := node.Decode(&doc); err != nil {
		return nil, errOther("Failed to parse network policy: %v", err)
	}
	if doc.Incoming == nil || doc.Incoming.Rules == nil {
		return nil, errOther("Network policy must declare incoming rules")
	}
	if doc.Outgoing == nil || doc.Outgoing.Rules == nil {
		return nil, errOther("Network policy must declare outgoing rules")
	}
	for _, set := range []*networkRuleSet{doc.Incoming, doc.Outgoing} {
		for _, rule := range *set.Rules {
			if rule.Ports == nil {
				continue
			}
			for _, pr := range *rule.Ports {
				if pr.Port == nil {
					return nil, errOther("Network policy port rule must declare a port")
				}
				if pr.Protocols == nil {
					return nil, errOther("Network policy port rule must declare protocols")
				}
			}
		}
	}
	return &doc, nil
}

// defaultNetworkPolicy is what a challenge gets when it declares no
// policy: reachable from cluster and world, may talk to its own pods and
// the world, and resolves DNS through kube-dns only.
func defaultNetworkPolicy() *networkPolicyDoc {
	dnsPort := uint16(53)
	return &networkPolicyDoc{
		Incoming: &networkRuleSet{Rules: &[]networkRule{
			{OtherParty: partyCluster},
			{OtherParty: partyWorld},
		}},
		Outgoing: &networkRuleSet{Rules: &[]networkRule{
			{OtherParty: partyChallenge},
			{OtherParty: partyWorld},
			{OtherParty: partyClusterDNS, Ports: &[]networkPortRule{{
				Port:      &dnsPort,
				Protocols: &[]policyProtocol{protocolUDP, protocolTCP},
			}}},
		}},
	}
}

// buildPolicies synthesizes the Cilium policies for a challenge: the base
// policy selecting networkpolicy=base, plus one override per service or
// VM that declares its own policy. A broken top-level policy falls back
// to the defaults; a broken per-service or per-VM policy is logged and
// skipped so the rest of the challenge still deploys.
func buildPolicies(doc *Document, disableDNSChecks bool) []*kube.CiliumNetworkPolicy {
	base := defaultNetworkPolicy()
	if !doc.NetworkPolicy.IsZero() {
		if parsed, err := parseNetworkPolicy(&doc.NetworkPolicy); err == nil {
			base = parsed
		}
	}
	policies := []*kube.CiliumNetworkPolicy{
		buildCiliumPolicy("base", map[string]string{"networkpolicy": "base"}, base, disableDNSChecks),
	}

	logger := log.WithComponent("compose")
	for _, id := range sortedKeys(doc.Services) {
		svc := doc.Services[id]
		if svc == nil || svc.NetworkPolicy.IsZero() {
			continue
		}
		parsed, err := parseNetworkPolicy(&svc.NetworkPolicy)
		if err != nil {
			logger.Error().Err(err).Str("service", id).Msg("Failed to parse x-ctf-network-policy for service")
			continue
		}
		policies = append(policies, buildCiliumPolicy(
			"svc-"+id, map[string]string{"compose-service-id": id}, parsed, disableDNSChecks))
	}
	for _, id := range sortedKeys(doc.VMs) {
		vm := doc.VMs[id]
		if vm == nil || vm.NetworkPolicy.IsZero() {
			continue
		}
		parsed, err := parseNetworkPolicy(&vm.NetworkPolicy)
		if err != nil {
			logger.Error().Err(err).Str("vm", id).Msg("Failed to parse network_policy for VM")
			continue
		}
		policies = append(policies, buildCiliumPolicy(
			"vm-"+id, map[string]string{"virtual-machine-id": id}, parsed, disableDNSChecks))
	}

	return policies
}

func buildCiliumPolicy(name string, matchLabels map[string]string, doc *networkPolicyDoc, disableDNSChecks bool) *kube.CiliumNetworkPolicy {
	return &kube.CiliumNetworkPolicy{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "cilium.io/v2",
			Kind:       "CiliumNetworkPolicy",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Spec: &kube.PolicyRule{
			Description:      "Base challenge policy",
			EndpointSelector: kube.EndpointSelector{MatchLabels: matchLabels},
			Ingress:          buildIngressRules(*doc.Incoming.Rules),
			Egress:           buildEgressRules(*doc.Outgoing.Rules, disableDNSChecks),
		},
	}
}

func buildIngressRules(rules []networkRule) []kube.IngressPolicyRule {
	out := make([]kube.IngressPolicyRule, 0, len(rules))
	for _, rule := range rules {
		ingress := kube.IngressPolicyRule{ToPorts: buildPortRules(rule.Ports)}
		switch rule.party() {
		case partyCluster:
			ingress.FromEntities = []string{"cluster"}
		case partyWorld:
			ingress.FromEntities = []string{"world"}
		}
		out = append(out, ingress)
	}
	return out
}

func buildEgressRules(rules []networkRule, disableDNSChecks bool) []kube.EgressPolicyRule {
	out := make([]kube.EgressPolicyRule, 0, len(rules))
	for _, rule := range rules {
		if rule.party() == partyClusterDNS {
			out = append(out, clusterDNSEgress(disableDNSChecks))
			continue
		}
		labels := map[string]string{}
		switch rule.party() {
		case partyChallenge:
			labels["app"] = "challenge"
		case partyCluster:
			labels["k8s-app"] = "kubelet"
		case partyWorld:
			labels["world"] = "true"
		}
		out = append(out, kube.EgressPolicyRule{
			ToEndpoints: []kube.EndpointSelector{{MatchLabels: labels}},
			ToPorts:     buildPortRules(rule.Ports),
		})
	}
	return out
}

// clusterDNSEgress pins DNS egress to kube-dns on port 53, with L7 DNS
// inspection unless disabled. Declared ports on a ClusterDns rule are
// ignored.
func clusterDNSEgress(disableDNSChecks bool) kube.EgressPolicyRule {
	toPorts := kube.PortRule{
		Ports: []kube.PortProtocol{
			{Port: "53", Protocol: "UDP"},
			{Port: "53", Protocol: "TCP"},
		},
	}
	if !disableDNSChecks {
		toPorts.Rules = &kube.L7Rules{DNS: []kube.DNSRule{{MatchPattern: "*"}}}
	}
	return kube.EgressPolicyRule{
		ToEndpoints: []kube.EndpointSelector{{
			MatchLabels: map[string]string{
				"io.kubernetes.pod.namespace": "kube-system",
				"k8s-app":                     "kube-dns",
			},
		}},
		ToPorts: []kube.PortRule{toPorts},
	}
}

func buildPortRules(ports *[]networkPortRule) []kube.PortRule {
	if ports == nil {
		return nil
	}
	out := make([]kube.PortRule, 0, len(*ports))
	for _, pr := range *ports {
		protos := make([]kube.PortProtocol, 0, len(*pr.Protocols))
		for _, proto := range *pr.Protocols {
			protos = append(protos, kube.PortProtocol{
				Port:     strconv.Itoa(int(*pr.Port)),
				Protocol: string(proto),
			})
		}
		out = append(out, kube.PortRule{Ports: protos})
	}
	return out
}
