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

// Package resource fetches the OCI image resource attached to the charm.
package resource

import (
	"context"
	"fmt"
	"os"

	"github.com/distribution/reference"
	"sigs.k8s.io/yaml"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
)

// Error reports that the image resource could not be turned into image
// details. It is the only fetch failure the charm recovers from.
type Error struct {
	Resource string
	Reason   string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resource %q: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("resource %q: %s: %v", e.Resource, e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Getter resolves a resource name to the path of its downloaded content.
type Getter interface {
	ResourceGet(ctx context.Context, name string) (string, error)
}

// imageFile is the YAML document Juju stores for an oci-image resource.
type imageFile struct {
	RegistryPath string `json:"registrypath"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
}

// OCIImage is an oci-image resource declared in metadata.yaml.
type OCIImage struct {
	Name   string
	Getter Getter
}

// NewOCIImage returns the image resource called name.
func NewOCIImage(getter Getter, name string) *OCIImage {
	return &OCIImage{Name: name, Getter: getter}
}

// Fetch resolves the resource and returns the image details for a pod spec.
// Every failure is reported as *Error.
func (o *OCIImage) Fetch(ctx context.Context) (charmv1.ImageDetails, error) {
	path, err := o.Getter.ResourceGet(ctx, o.Name)
	if err != nil {
		return charmv1.ImageDetails{}, &Error{Resource: o.Name, Reason: "missing resource", Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return charmv1.ImageDetails{}, &Error{Resource: o.Name, Reason: "unreadable resource", Err: err}
	}

	var img imageFile
	if err := yaml.Unmarshal(data, &img); err != nil {
		return charmv1.ImageDetails{}, &Error{Resource: o.Name, Reason: "invalid resource", Err: err}
	}
	if img.RegistryPath == "" {
		return charmv1.ImageDetails{}, &Error{Resource: o.Name, Reason: "invalid resource: no registrypath"}
	}
	if _, err := reference.ParseNormalizedNamed(img.RegistryPath); err != nil {
		return charmv1.ImageDetails{}, &Error{Resource: o.Name, Reason: "invalid image reference", Err: err}
	}

	return charmv1.ImageDetails{
		ImagePath: img.RegistryPath,
		Username:  img.Username,
		Password:  img.Password,
	}, nil
}
