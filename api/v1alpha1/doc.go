/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package v1alpha1 defines the API types for the Shazamq Operator.
//
// This package contains the Go type definitions for the shazamq.io API
// group. These types are used by kubebuilder to generate:
//   - CustomResourceDefinitions (CRDs)
//   - DeepCopy methods
//   - Client code
//
// The API defines a single custom resource:
//   - ShazamqCluster: the declarative description of a Shazamq broker
//     cluster. The operator derives a generated broker configuration, a
//     client Service, a headless discovery Service, and a StatefulSet from
//     it, and writes observed health back onto the status subresource.
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
package v1alpha1
