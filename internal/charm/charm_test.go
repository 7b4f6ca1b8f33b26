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

package charm

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
	"github.com/gxanlvxgx/hello-world-charm/internal/resource"
)

var _ = Describe("Charm", func() {
	var (
		ctx   context.Context
		model *fakeModel
		c     *Charm
	)

	BeforeEach(func() {
		ctx = context.Background()
		model = &fakeModel{leader: true, config: map[string]any{"hostname": "example.com"}}
		c = New("hello", model, staticImage("nginx:1.27"))
	})

	It("starts with the default state", func() {
		Expect(c.State).To(Equal(&State{Things: []string{}}))
	})

	DescribeTable("configures the pod on lifecycle events",
		func(ev Event) {
			Expect(c.Dispatch(ctx, ev)).To(Succeed())
			Expect(model.submissions).To(HaveLen(1))
		},
		Entry("start", EventStart),
		Entry("config-changed", EventConfigChanged),
		Entry("leader-elected", EventLeaderElected),
		Entry("upgrade-charm", EventUpgradeCharm),
	)

	It("ignores other events", func() {
		Expect(c.Dispatch(ctx, ParseEvent("install"))).To(Succeed())
		Expect(model.submissions).To(BeEmpty())
		Expect(model.statuses).To(BeEmpty())
	})

	It("ignores other events without reading the config", func() {
		model.config = map[string]any{}

		Expect(c.Dispatch(ctx, ParseEvent("install"))).To(Succeed())
		Expect(model.configReads).To(BeZero())
	})

	Context("on the leader", func() {
		It("walks the status through assembly and submits the spec", func() {
			Expect(c.ConfigurePod(ctx)).To(Succeed())

			Expect(model.statuses).To(Equal([]charmv1.Status{
				charmv1.MaintenanceStatus("Assembling pod spec"),
				charmv1.MaintenanceStatus("Setting pod spec"),
				charmv1.ActiveStatus(""),
			}))
			Expect(model.submissions).To(HaveLen(1))
			Expect(model.submissions[0].Resources).To(MatchJSON(`{
				"kubernetesResources": {
					"ingressResources": [{
						"name": "hello-ingress",
						"spec": {
							"rules": [{
								"host": "example.com",
								"http": {
									"paths": [{
										"path": "/",
										"backend": {"serviceName": "hello", "servicePort": 80}
									}]
								}
							}]
						},
						"annotations": {"nginx.ingress.kubernetes.io/ssl-redirect": "false"}
					}]
				}
			}`))
		})

		It("submits byte-identical specs for unchanged input", func() {
			Expect(c.Dispatch(ctx, EventConfigChanged)).To(Succeed())
			Expect(c.Dispatch(ctx, EventConfigChanged)).To(Succeed())

			Expect(model.submissions).To(HaveLen(2))
			Expect(model.submissions[1].Spec).To(Equal(model.submissions[0].Spec))
			Expect(model.submissions[1].Resources).To(Equal(model.submissions[0].Resources))
		})

		It("still submits the empty spec when the image cannot be fetched", func() {
			c.Image = failingImage(&resource.Error{Resource: "site-image", Reason: "missing resource"})

			Expect(c.ConfigurePod(ctx)).To(Succeed())

			Expect(model.statuses).To(Equal([]charmv1.Status{
				charmv1.MaintenanceStatus("Assembling pod spec"),
				charmv1.BlockedStatus("Error fetching image information"),
				charmv1.MaintenanceStatus("Setting pod spec"),
				charmv1.ActiveStatus(""),
			}))
			Expect(model.submissions).To(HaveLen(1))
			Expect(model.submissions[0].Spec).To(MatchJSON(`{}`))
			Expect(string(model.submissions[0].Resources)).To(ContainSubstring(`"hello-ingress"`))
		})

		It("stops without submitting when the fetch fails unexpectedly", func() {
			boom := errors.New("boom")
			c.Image = failingImage(boom)

			Expect(c.ConfigurePod(ctx)).To(MatchError(boom))
			Expect(model.submissions).To(BeEmpty())
		})

		It("fails on a missing hostname without submitting", func() {
			model.config = map[string]any{}

			Expect(c.ConfigurePod(ctx)).To(MatchError(ContainSubstring(`"hostname" is not set`)))
			Expect(model.submissions).To(BeEmpty())
		})

		It("returns config-get failures", func() {
			model.configErr = errors.New("config-get failed")

			Expect(c.ConfigurePod(ctx)).To(MatchError("config-get failed"))
			Expect(model.submissions).To(BeEmpty())
		})

		It("returns status errors", func() {
			model.statusErr = errors.New("status-set failed")

			Expect(c.ConfigurePod(ctx)).To(MatchError("status-set failed"))
			Expect(model.submissions).To(BeEmpty())
		})
	})

	Context("on a non-leader", func() {
		BeforeEach(func() {
			model.leader = false
		})

		It("reports active and submits nothing", func() {
			Expect(c.Dispatch(ctx, EventConfigChanged)).To(Succeed())

			Expect(model.statuses).To(Equal([]charmv1.Status{charmv1.ActiveStatus("")}))
			Expect(model.submissions).To(BeEmpty())
		})

		It("reports active even when the hostname is unset", func() {
			model.config = map[string]any{}

			Expect(c.Dispatch(ctx, EventConfigChanged)).To(Succeed())

			Expect(model.statuses).To(Equal([]charmv1.Status{charmv1.ActiveStatus("")}))
			Expect(model.configReads).To(BeZero())
			Expect(model.submissions).To(BeEmpty())
		})
	})

	It("fails when leadership cannot be determined", func() {
		model.leaderErr = errors.New("is-leader failed")

		Expect(c.Dispatch(ctx, EventStart)).To(MatchError("is-leader failed"))
		Expect(model.statuses).To(BeEmpty())
	})
})

var _ = Describe("ParseEvent", func() {
	DescribeTable("maps hook names",
		func(hook string, want Event) {
			ev := ParseEvent(hook)
			Expect(ev).To(Equal(want))
			if want != EventUnknown {
				Expect(ev.String()).To(Equal(hook))
			}
		},
		Entry("start", "start", EventStart),
		Entry("config-changed", "config-changed", EventConfigChanged),
		Entry("leader-elected", "leader-elected", EventLeaderElected),
		Entry("upgrade-charm", "upgrade-charm", EventUpgradeCharm),
		Entry("stop", "stop", EventUnknown),
		Entry("empty", "", EventUnknown),
	)
})

var _ = Describe("ParseConfig", func() {
	It("reads the hostname", func() {
		cfg, err := ParseConfig(map[string]any{"hostname": "example.com"})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(Config{Hostname: "example.com"}))
	})

	It("rejects a missing hostname", func() {
		_, err := ParseConfig(map[string]any{})
		Expect(err).To(MatchError(ContainSubstring("not set")))
	})

	It("rejects a hostname that is not a string", func() {
		_, err := ParseConfig(map[string]any{"hostname": 42.0})
		Expect(err).To(MatchError(ContainSubstring("expected string")))
	})
})
