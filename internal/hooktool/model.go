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

// Package hooktool talks to the Juju unit agent through the hook tools it
// puts on PATH while a hook runs.
package hooktool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/yaml"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
)

// Model is the unit's view of the Juju model, backed by hook tools.
type Model struct {
	Runner Runner

	// TempDir receives the spec files handed to pod-spec-set.
	// Empty means os.TempDir().
	TempDir string
}

// New returns a Model that runs the real hook tools.
func New() *Model {
	return &Model{Runner: ExecRunner{}}
}

// IsLeader reports whether this unit is the application leader.
func (m *Model) IsLeader(ctx context.Context) (bool, error) {
	out, err := m.Runner.Run(ctx, "is-leader", "--format=json")
	if err != nil {
		return false, err
	}
	var leader bool
	if err := json.Unmarshal(out, &leader); err != nil {
		return false, fmt.Errorf("decoding is-leader output %q: %w", strings.TrimSpace(string(out)), err)
	}
	return leader, nil
}

// SetStatus sets the workload status of this unit.
func (m *Model) SetStatus(ctx context.Context, status charmv1.Status) error {
	args := []string{string(status.Kind)}
	if status.Message != "" {
		args = append(args, status.Message)
	}
	_, err := m.Runner.Run(ctx, "status-set", args...)
	return err
}

// Config returns the charm configuration.
func (m *Model) Config(ctx context.Context) (map[string]any, error) {
	out, err := m.Runner.Run(ctx, "config-get", "--format=json")
	if err != nil {
		return nil, err
	}
	cfg := map[string]any{}
	if err := json.Unmarshal(out, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config-get output: %w", err)
	}
	return cfg, nil
}

// ResourceGet downloads the named resource and returns its local path.
func (m *Model) ResourceGet(ctx context.Context, name string) (string, error) {
	out, err := m.Runner.Run(ctx, "resource-get", name)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", fmt.Errorf("resource-get %s returned no path", name)
	}
	return path, nil
}

// SetSpec submits the pod spec and the Kubernetes resources that go with it.
func (m *Model) SetSpec(ctx context.Context, spec *charmv1.PodSpec, resources *charmv1.K8sResources) error {
	log := log.FromContext(ctx)

	specFile, err := m.writeTemp("podspec-*.yaml", spec)
	if err != nil {
		return err
	}
	defer os.Remove(specFile)

	resFile, err := m.writeTemp("k8s-resources-*.yaml", resources)
	if err != nil {
		return err
	}
	defer os.Remove(resFile)

	log.V(1).Info("Running pod-spec-set", "file", specFile, "k8sResources", resFile)
	_, err = m.Runner.Run(ctx, "pod-spec-set", "--file", specFile, "--k8s-resources", resFile)
	return err
}

func (m *Model) writeTemp(pattern string, v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", pattern, err)
	}

	f, err := os.CreateTemp(m.TempDir, pattern)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
