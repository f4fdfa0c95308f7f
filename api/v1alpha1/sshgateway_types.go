package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SSHGatewaySpec describes a backend SSH server that the gateway should
// proxy authenticated players to.
type SSHGatewaySpec struct {
	// BackendService is the name of the Kubernetes Service fronting the
	// backend SSH server. Together with the object's namespace it forms
	// the login name players use at the gateway.
	// +kubebuilder:validation:Required
	BackendService string `json:"backend_service"`

	// BackendPort is the port the backend SSH server listens on.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	BackendPort int32 `json:"backend_port"`

	// BackendUsername is the account the gateway logs in with on the
	// backend server.
	// +kubebuilder:validation:Required
	BackendUsername string `json:"backend_username"`

	// BackendPassword authenticates the gateway against the backend.
	// +kubebuilder:validation:Required
	BackendPassword string `json:"backend_password"`

	// GatewayPassword is the password players present to the gateway.
	// When unset the gateway accepts any password for this login.
	// +optional
	GatewayPassword *string `json:"gateway_password,omitempty"`
}

// +kubebuilder:object:root=true

// SSHGateway is the Schema for the sshgateways API. One object is created
// per exposed SSH port of a challenge instance; the gateway controller
// watches them to learn which logins map to which backend servers.
type SSHGateway struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SSHGatewaySpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// SSHGatewayList contains a list of SSHGateway.
type SSHGatewayList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SSHGateway `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SSHGateway{}, &SSHGatewayList{})
}
