package gateway

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/plfanzen/plfanzen/api/v1alpha1"
)

// CRDName is the metadata.name of the SSHGateway CustomResourceDefinition.
const CRDName = "sshgateways.plfanzen.garden"

// CustomResourceDefinition builds the SSHGateway CRD the gateway installs
// at startup. The schema mirrors v1alpha1.SSHGatewaySpec.
func CustomResourceDefinition() *apiextensionsv1.CustomResourceDefinition {
	minPort := float64(1)
	maxPort := float64(65535)
	return &apiextensionsv1.CustomResourceDefinition{
		ObjectMeta: metav1.ObjectMeta{Name: CRDName},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: v1alpha1.GroupVersion.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:   "sshgateways",
				Singular: "sshgateway",
				Kind:     "SSHGateway",
				ListKind: "SSHGatewayList",
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{{
				Name:    v1alpha1.GroupVersion.Version,
				Served:  true,
				Storage: true,
				Schema: &apiextensionsv1.CustomResourceValidation{
					OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
						Type: "object",
						Properties: map[string]apiextensionsv1.JSONSchemaProps{
							"spec": {
								Type:     "object",
								Required: []string{"backend_service", "backend_port", "backend_username", "backend_password"},
								Properties: map[string]apiextensionsv1.JSONSchemaProps{
									"backend_service":  {Type: "string"},
									"backend_port":     {Type: "integer", Minimum: &minPort, Maximum: &maxPort},
									"backend_username": {Type: "string"},
									"backend_password": {Type: "string"},
									"gateway_password": {Type: "string"},
								},
							},
						},
					},
				},
			}},
		},
	}
}

// EnsureCRD installs the SSHGateway CRD when it is not already present, so
// the gateway can run on a fresh cluster without a manifest step.
func EnsureCRD(ctx context.Context, client apiextensionsclient.Interface, logger zerolog.Logger) error {
	crd := CustomResourceDefinition()
	_, err := client.ApiextensionsV1().CustomResourceDefinitions().Get(ctx, crd.Name, metav1.GetOptions{})
	if err == nil {
		logger.Info().Str("crd", crd.Name).Msg("CRD already exists")
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return fmt.Errorf("checking for CRD %s: %w", crd.Name, err)
	}
	logger.Info().Str("crd", crd.Name).Msg("Creating CRD")
	if _, err := client.ApiextensionsV1().CustomResourceDefinitions().Create(ctx, crd, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("creating CRD %s: %w", crd.Name, err)
	}
	return nil
}
