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

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/yaml"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
	"github.com/gxanlvxgx/hello-world-charm/internal/charm"
)

var (
	renderFlags struct {
		hostname string
		app      string
		image    string
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print the pod spec and Kubernetes resources the leader would submit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctrl.LoggerInto(cmd.Context(), ctrl.Log.WithName("render"))
			return render(ctx, cmd.OutOrStdout(), renderFlags.app, renderFlags.hostname, renderFlags.image)
		},
	}
)

func init() {
	renderCmd.Flags().StringVar(&renderFlags.hostname, "hostname", "", "value of the hostname config option")
	renderCmd.Flags().StringVar(&renderFlags.app, "app", "hello", "application name")
	renderCmd.Flags().StringVar(&renderFlags.image, "image", "nginx:latest", "image path of the site-image resource")
}

func render(ctx context.Context, out io.Writer, app, hostname, image string) error {
	fetch := charm.ImageFetcherFunc(func(context.Context) (charmv1.ImageDetails, error) {
		return charmv1.ImageDetails{ImagePath: image}, nil
	})
	c := charm.New(app, &printModel{out: out, hostname: hostname}, fetch)
	return c.Dispatch(ctx, charm.EventConfigChanged)
}

// printModel is a leader-only model that writes the submitted spec out
// as YAML instead of calling pod-spec-set.
type printModel struct {
	out      io.Writer
	hostname string
}

func (m *printModel) Config(context.Context) (map[string]any, error) {
	return map[string]any{"hostname": m.hostname}, nil
}

func (m *printModel) IsLeader(context.Context) (bool, error) { return true, nil }

func (m *printModel) SetStatus(ctx context.Context, status charmv1.Status) error {
	ctrl.LoggerFrom(ctx).V(1).Info("Status", "status", status.String())
	return nil
}

func (m *printModel) SetSpec(_ context.Context, spec *charmv1.PodSpec, resources *charmv1.K8sResources) error {
	for i, doc := range []any{spec, resources} {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(m.out, "---")
		}
		if _, err := m.out.Write(data); err != nil {
			return err
		}
	}
	return nil
}
