package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIngressRouteHost tests the exact public host an HTTP port gets
func TestIngressRouteHost(t *testing.T) {
	ports := []Port{{Target: 8080, AppProtocol: "http"}}
	route := buildIngressRoute("srv", ports, "challenge-xyz-instance-ab12cd34ef56", "c.example")
	require.NotNil(t, route)

	assert.Equal(t, "srv-ingress-route", route.Name)
	assert.Equal(t, "IngressRoute", route.Kind)
	assert.Equal(t, []string{"websecure"}, route.Spec.EntryPoints)
	require.Len(t, route.Spec.Routes, 1)

	rule := route.Spec.Routes[0]
	assert.Equal(t, "Rule", rule.Kind)
	assert.Equal(t, "Host(`srv-8080-challenge-xyz-instance-ab12cd34ef56.c.example`)", rule.Match)
	require.Len(t, rule.Services, 1)
	assert.Equal(t, "srv-exposed-ports", rule.Services[0].Name)
	assert.Equal(t, int32(8080), rule.Services[0].Port)
}

// TestIngressRouteSelectsHTTPPorts tests that only http+tcp ports route
func TestIngressRouteSelectsHTTPPorts(t *testing.T) {
	ports := []Port{
		{Target: 8080, AppProtocol: "http"},
		{Target: 8443, AppProtocol: "HTTP"},
		{Target: 9999, AppProtocol: "http", Protocol: "udp"},
		{Target: 22, AppProtocol: "ssh"},
		{Target: 4000},
	}
	route := buildIngressRoute("srv", ports, "ns", "c.example")
	require.NotNil(t, route)
	require.Len(t, route.Spec.Routes, 2)
	assert.Contains(t, route.Spec.Routes[0].Match, "srv-8080-ns")
	assert.Contains(t, route.Spec.Routes[1].Match, "srv-8443-ns")

	assert.Nil(t, buildIngressRoute("srv", []Port{{Target: 4000}}, "ns", "c.example"))
}

// TestIngressRouteTCP tests SNI routing for plain TCP ports
func TestIngressRouteTCP(t *testing.T) {
	ports := []Port{
		{Target: 4000},
		{Target: 8080, AppProtocol: "http"},
		{Target: 22, AppProtocol: "ssh"},
		{Target: 53, Protocol: "udp"},
	}
	route := buildIngressRouteTCP("srv", ports, "ns", "c.example")
	require.NotNil(t, route)

	assert.Equal(t, "srv-ingress-route-tcp", route.Name)
	assert.Equal(t, "IngressRouteTCP", route.Kind)
	require.NotNil(t, route.Spec.TLS)
	assert.False(t, route.Spec.TLS.Passthrough, "TLS terminates at the proxy")

	require.Len(t, route.Spec.Routes, 1)
	rule := route.Spec.Routes[0]
	assert.Equal(t, "HostSNI(`srv-4000-ns.c.example`)", rule.Match)
	require.Len(t, rule.Services, 1)
	assert.Equal(t, "srv-exposed-ports", rule.Services[0].Name)
	assert.Equal(t, int32(4000), rule.Services[0].Port)

	assert.Nil(t, buildIngressRouteTCP("srv", []Port{{Target: 8080, AppProtocol: "http"}}, "ns", "c.example"))
}
