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

// Package charm assembles the web server pod spec and ingress and submits
// them to the Juju model on lifecycle events.
package charm

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/log"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
)

// Model is the part of the Juju model the charm acts on.
type Model interface {
	IsLeader(ctx context.Context) (bool, error)
	SetStatus(ctx context.Context, status charmv1.Status) error
	SetSpec(ctx context.Context, spec *charmv1.PodSpec, resources *charmv1.K8sResources) error

	// Config returns the charm options as config-get reports them.
	Config(ctx context.Context) (map[string]any, error)
}

// ImageFetcher returns the details of the workload image.
type ImageFetcher interface {
	Fetch(ctx context.Context) (charmv1.ImageDetails, error)
}

// ImageFetcherFunc adapts a function to ImageFetcher.
type ImageFetcherFunc func(ctx context.Context) (charmv1.ImageDetails, error)

func (f ImageFetcherFunc) Fetch(ctx context.Context) (charmv1.ImageDetails, error) {
	return f(ctx)
}

// State is the charm's stored state. Nothing reads it yet.
type State struct {
	Things []string
}

// DefaultState returns the state a fresh unit starts with.
func DefaultState() *State {
	return &State{Things: []string{}}
}

// Charm deploys a basic web server as the application workload.
type Charm struct {
	// App is the application name, used for the container, service and ingress
	App string

	State *State
	Model Model
	Image ImageFetcher
}

// New returns a Charm for app with default state.
func New(app string, model Model, image ImageFetcher) *Charm {
	return &Charm{
		App:   app,
		State: DefaultState(),
		Model: model,
		Image: image,
	}
}

// Dispatch runs the handler registered for ev. Events the charm does not
// handle are ignored.
func (c *Charm) Dispatch(ctx context.Context, ev Event) error {
	switch ev {
	case EventStart, EventConfigChanged, EventLeaderElected, EventUpgradeCharm:
		return c.ConfigurePod(ctx)
	default:
		log.FromContext(ctx).V(1).Info("Ignoring event", "event", ev.String())
		return nil
	}
}

// ConfigurePod assembles the pod spec and the ingress and submits them.
// Only the leader reads the config and submits; other units just report
// active.
//
// When the image cannot be fetched the pod spec is empty and the unit is
// blocked, but the empty spec is still submitted and the status then moves
// on to active.
func (c *Charm) ConfigurePod(ctx context.Context) error {
	logger := log.FromContext(ctx).WithValues("app", c.App)
	ctx = log.IntoContext(ctx, logger)

	leader, err := c.Model.IsLeader(ctx)
	if err != nil {
		return err
	}
	if !leader {
		return c.Model.SetStatus(ctx, charmv1.ActiveStatus(""))
	}

	if err := c.Model.SetStatus(ctx, charmv1.MaintenanceStatus("Assembling pod spec")); err != nil {
		return err
	}

	podSpec, err := c.MakePodSpec(ctx)
	if err != nil {
		return err
	}
	if podSpec.IsEmpty() {
		logger.Info("Submitting empty pod spec")
	}

	raw, err := c.Model.Config(ctx)
	if err != nil {
		return err
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return err
	}
	resources := &charmv1.K8sResources{
		KubernetesResources: charmv1.KubernetesResources{
			IngressResources: MakeIngress(cfg.Hostname, c.App),
		},
	}

	if err := c.Model.SetStatus(ctx, charmv1.MaintenanceStatus("Setting pod spec")); err != nil {
		return err
	}
	if err := c.Model.SetSpec(ctx, &podSpec, resources); err != nil {
		return err
	}

	logger.Info("Setting active status")
	return c.Model.SetStatus(ctx, charmv1.ActiveStatus(""))
}
