package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/plfanzen/plfanzen/api/v1alpha1"
	"github.com/plfanzen/plfanzen/pkg/log"
)

// serviceWaitInterval is how long to wait before re-checking a gateway
// whose backend Service does not exist yet.
const serviceWaitInterval = 10 * time.Second

// Reconciler keeps the backend registry in step with SSHGateway objects
// across all namespaces: applied objects install a login once their backend
// Service exists, deleted objects remove it.
type Reconciler struct {
	client.Client
	Registry *Registry

	logger zerolog.Logger
}

// NewReconciler builds a reconciler feeding registry.
func NewReconciler(c client.Client, registry *Registry) *Reconciler {
	return &Reconciler{
		Client:   c,
		Registry: registry,
		logger:   log.WithComponent("gateway-controller"),
	}
}

// Reconcile installs or removes the registry entry for one SSHGateway.
func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	gw := &v1alpha1.SSHGateway{}
	if err := r.Get(ctx, req.NamespacedName, gw); err != nil {
		if apierrors.IsNotFound(err) {
			r.Registry.RemoveOwner(req.String())
			r.logger.Info().Str("gateway", req.String()).Msg("Removed backend for deleted gateway")
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}
	if !gw.DeletionTimestamp.IsZero() {
		r.Registry.RemoveOwner(req.String())
		return ctrl.Result{}, nil
	}

	// The login is only routable once the backend Service exists.
	svc := &corev1.Service{}
	svcKey := types.NamespacedName{Namespace: gw.Namespace, Name: gw.Spec.BackendService}
	if err := r.Get(ctx, svcKey, svc); err != nil {
		if apierrors.IsNotFound(err) {
			r.logger.Debug().Str("service", svcKey.String()).Msg("Waiting for backend service")
			return ctrl.Result{RequeueAfter: serviceWaitInterval}, nil
		}
		return ctrl.Result{}, err
	}

	login := fmt.Sprintf("%s-%s", gw.Spec.BackendService, gw.Namespace)
	r.Registry.Set(req.String(), login, Backend{
		Addr:        fmt.Sprintf("%s.%s.svc.cluster.local:%d", gw.Spec.BackendService, gw.Namespace, gw.Spec.BackendPort),
		User:        gw.Spec.BackendUsername,
		Pass:        gw.Spec.BackendPassword,
		GatewayPass: gw.Spec.GatewayPassword,
	})
	r.logger.Info().Str("login", login).Str("gateway", req.String()).Msg("Installed backend for gateway")
	return ctrl.Result{}, nil
}

// SetupWithManager registers the reconciler with mgr.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.SSHGateway{}).
		Named("sshgateway").
		Complete(r)
}
