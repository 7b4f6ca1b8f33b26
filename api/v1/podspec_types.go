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

// Package v1 contains the pod spec (version 3) and Kubernetes resource
// shapes the charm hands to the Juju model.
package v1

import (
	corev1 "k8s.io/api/core/v1"
	networkingv1beta1 "k8s.io/api/networking/v1beta1"
)

// PodSpecVersion is the pod spec format understood by Juju. Resources
// passed with older versions are ignored.
const PodSpecVersion = 3

// PodSpec describes the workload containers of the application.
// The zero value is the empty spec and serialises to {}.
type PodSpec struct {
	// Version is the pod spec format version
	Version int `json:"version,omitempty"`

	// Containers lists the containers run in every unit pod
	Containers []Container `json:"containers,omitempty"`
}

// IsEmpty reports whether the spec carries no containers and no version.
func (p *PodSpec) IsEmpty() bool {
	return p == nil || (p.Version == 0 && len(p.Containers) == 0)
}

// Container is a single container entry of a PodSpec.
type Container struct {
	// Name of the container, the application name for this charm
	Name string `json:"name"`

	// ImageDetails points at the OCI image and its registry credentials
	ImageDetails ImageDetails `json:"imageDetails"`

	// ImagePullPolicy is always corev1.PullAlways for this charm
	ImagePullPolicy corev1.PullPolicy `json:"imagePullPolicy,omitempty"`

	// Ports exposed by the container
	Ports []corev1.ContainerPort `json:"ports,omitempty"`

	// Kubernetes holds the Kubernetes specific container settings
	Kubernetes *ContainerKubernetes `json:"kubernetes,omitempty"`
}

// ContainerKubernetes carries container settings that only make sense on
// Kubernetes.
type ContainerKubernetes struct {
	ReadinessProbe *corev1.Probe `json:"readinessProbe,omitempty"`
}

// ImageDetails is the content of an OCI image resource.
type ImageDetails struct {
	ImagePath string `json:"imagePath"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
}

// IngressResource is an ingress as pod spec v3 declares it: a name, a spec
// and the annotations to set on the generated object.
type IngressResource struct {
	Name        string                        `json:"name"`
	Spec        networkingv1beta1.IngressSpec `json:"spec"`
	Annotations map[string]string             `json:"annotations,omitempty"`
}

// KubernetesResources are the extra objects created next to the pods.
type KubernetesResources struct {
	IngressResources []IngressResource `json:"ingressResources,omitempty"`
}

// K8sResources is the document submitted as --k8s-resources.
type K8sResources struct {
	KubernetesResources KubernetesResources `json:"kubernetesResources"`
}
