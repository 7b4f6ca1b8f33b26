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
	goflag "flag"
	"fmt"

	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/gxanlvxgx/hello-world-charm/internal/charm"
	"github.com/gxanlvxgx/hello-world-charm/internal/hooktool"
	"github.com/gxanlvxgx/hello-world-charm/internal/resource"
)

var (
	zapOpts = zap.Options{Development: true}

	hookFlags struct {
		event    string
		resource string
	}

	// rootCmd runs the hook named by JUJU_DISPATCH_PATH
	rootCmd = &cobra.Command{
		Use:   "hello-world-charm",
		Short: "Deploys a basic web server on Kubernetes under Juju",
		Long: `hello-world-charm is the dispatch target of the charm.

The unit agent runs it for every hook. On start, config-changed,
leader-elected and upgrade-charm the leader unit assembles the pod spec
and ingress and submits them with pod-spec-set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctrl.SetLogger(zap.New(zap.UseFlagOptions(&zapOpts)))
		},
		RunE: runHook,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	fs := goflag.NewFlagSet("zap", goflag.ContinueOnError)
	zapOpts.BindFlags(fs)
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	rootCmd.Flags().StringVar(&hookFlags.event, "event", "", "hook to dispatch (defaults to the base of JUJU_DISPATCH_PATH)")
	rootCmd.Flags().StringVar(&hookFlags.resource, "resource", "site-image", "name of the oci-image resource")

	rootCmd.AddCommand(renderCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	ctx := ctrl.SetupSignalHandler()
	return dispatchHook(ctx, hooktool.LoadEnvironment(), hooktool.New(), hookFlags.event, hookFlags.resource)
}

// dispatchHook runs one hook against model. event overrides the hook named
// by the environment when set.
func dispatchHook(ctx context.Context, env hooktool.Environment, model *hooktool.Model, event, resourceName string) error {
	hook := event
	if hook == "" {
		hook = env.HookName()
	}
	app := env.AppName()
	if app == "" {
		return fmt.Errorf("JUJU_UNIT_NAME is not set")
	}
	log := ctrl.Log.WithName("hook").WithValues("hook", hook, "unit", env.UnitName)
	ctx = ctrl.LoggerInto(ctx, log)

	c := charm.New(app, model, resource.NewOCIImage(model, resourceName))
	return c.Dispatch(ctx, charm.ParseEvent(hook))
}
