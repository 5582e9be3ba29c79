// Package testutil provides testing utilities for controller tests.
package testutil

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/api/meta"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// FailureConfig configures when the fake client should return errors.
// Each field is a function that receives the object/key and returns an error
// if the operation should fail. The reconciler talks to the API server
// through Get, Patch, and Status().Patch() only, so those are the hooks
// offered here.
type FailureConfig struct {
	// OnGet is called before Get operations. Return non-nil to fail the operation.
	OnGet func(key client.ObjectKey) error

	// OnPatch is called before Patch operations. Return non-nil to fail the operation.
	OnPatch func(obj client.Object) error

	// OnStatusPatch is called before Status().Patch() operations. Return non-nil to fail the operation.
	OnStatusPatch func(obj client.Object) error
}

// fakeClientWithFailures wraps a real fake client and injects failures based
// on configuration.
type fakeClientWithFailures struct {
	client.Client
	config *FailureConfig
}

// NewFakeClientWithFailures creates a fake client that can be configured to
// fail operations. This is useful for testing error handling paths in
// controllers.
func NewFakeClientWithFailures(baseClient client.Client, config *FailureConfig) client.Client {
	if config == nil {
		config = &FailureConfig{}
	}
	return &fakeClientWithFailures{
		Client: baseClient,
		config: config,
	}
}

func (c *fakeClientWithFailures) Get(
	ctx context.Context,
	key client.ObjectKey,
	obj client.Object,
	opts ...client.GetOption,
) error {
	if c.config.OnGet != nil {
		if err := c.config.OnGet(key); err != nil {
			return err
		}
	}
	return c.Client.Get(ctx, key, obj, opts...)
}

func (c *fakeClientWithFailures) Patch(
	ctx context.Context,
	obj client.Object,
	patch client.Patch,
	opts ...client.PatchOption,
) error {
	if c.config.OnPatch != nil {
		if err := c.config.OnPatch(obj); err != nil {
			return err
		}
	}
	return c.Client.Patch(ctx, obj, patch, opts...)
}

func (c *fakeClientWithFailures) Status() client.StatusWriter {
	return &statusWriterWithFailures{
		StatusWriter: c.Client.Status(),
		config:       c.config,
	}
}

type statusWriterWithFailures struct {
	client.StatusWriter
	config *FailureConfig
}

func (s *statusWriterWithFailures) Patch(
	ctx context.Context,
	obj client.Object,
	patch client.Patch,
	opts ...client.SubResourcePatchOption,
) error {
	if s.config.OnStatusPatch != nil {
		if err := s.config.OnStatusPatch(obj); err != nil {
			return err
		}
	}
	return s.StatusWriter.Patch(ctx, obj, patch, opts...)
}

// Helper functions for common failure scenarios

// FailOnObjectName returns an error if the object name matches.
func FailOnObjectName(name string, err error) func(client.Object) error {
	return func(obj client.Object) error {
		accessor, metaErr := meta.Accessor(obj)
		if metaErr != nil {
			panic(fmt.Sprintf("meta.Accessor failed: %v", metaErr))
		}
		if accessor.GetName() == name {
			return err
		}
		return nil
	}
}

// FailOnKeyName returns an error if the key name matches.
func FailOnKeyName(name string, err error) func(client.ObjectKey) error {
	return func(key client.ObjectKey) error {
		if key.Name == name {
			return err
		}
		return nil
	}
}

// FailKeyAfterNCalls returns an ObjectKey failure function that fails after
// N successful calls. Use for OnGet.
func FailKeyAfterNCalls(n int, err error) func(client.ObjectKey) error {
	count := 0
	return func(client.ObjectKey) error {
		count++
		if count > n {
			return err
		}
		return nil
	}
}

// Common errors for testing
var (
	ErrInjected       = fmt.Errorf("injected test error")
	ErrNetworkTimeout = fmt.Errorf("network timeout")
)
