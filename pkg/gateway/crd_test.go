package gateway

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset/fake"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// TestEnsureCRD tests installation on a fresh cluster and idempotency on
// the second boot.
func TestEnsureCRD(t *testing.T) {
	client := fake.NewSimpleClientset()

	require.NoError(t, EnsureCRD(context.Background(), client, zerolog.Nop()))

	crd, err := client.ApiextensionsV1().CustomResourceDefinitions().Get(context.Background(), CRDName, metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "plfanzen.garden", crd.Spec.Group)
	assert.Equal(t, "SSHGateway", crd.Spec.Names.Kind)
	require.Len(t, crd.Spec.Versions, 1)
	assert.Equal(t, "v1alpha1", crd.Spec.Versions[0].Name)

	spec := crd.Spec.Versions[0].Schema.OpenAPIV3Schema.Properties["spec"]
	assert.ElementsMatch(t,
		[]string{"backend_service", "backend_port", "backend_username", "backend_password"},
		spec.Required)
	assert.Contains(t, spec.Properties, "gateway_password")

	// A second boot finds the CRD and leaves it alone.
	require.NoError(t, EnsureCRD(context.Background(), client, zerolog.Nop()))
	list, err := client.ApiextensionsV1().CustomResourceDefinitions().List(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
