// Package webhook provides the entry point for the Shazamq Operator's
// admission control layer. It registers the defaulting and validating
// handlers from the 'handlers' subpackage with the controller-runtime
// webhook server.
//
// Usage:
//
//	if err := webhook.Setup(mgr, opts); err != nil {
//	    setupLog.Error(err, "unable to setup webhook")
//	    os.Exit(1)
//	}
package webhook

import (
	"fmt"

	ctrl "sigs.k8s.io/controller-runtime"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/webhook/handlers"
)

// Options contains the configuration required to set up the webhook server.
type Options struct {
	// Enable indicates whether to register the admission webhooks.
	Enable bool
}

// Setup registers the admission handlers with the manager. Certificates are
// expected to be provisioned externally (e.g. cert-manager) into the webhook
// server's certificate directory.
func Setup(mgr ctrl.Manager, opts Options) error {
	if !opts.Enable {
		return nil
	}

	if err := ctrl.NewWebhookManagedBy(mgr).
		For(&shazamqv1alpha1.ShazamqCluster{}).
		WithDefaulter(handlers.NewShazamqClusterDefaulter()).
		WithValidator(handlers.NewShazamqClusterValidator()).
		Complete(); err != nil {
		return fmt.Errorf("failed to register ShazamqCluster webhooks: %w", err)
	}

	return nil
}
