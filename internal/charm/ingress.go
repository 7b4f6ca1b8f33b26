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
	networkingv1beta1 "k8s.io/api/networking/v1beta1"
	"k8s.io/apimachinery/pkg/util/intstr"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
)

// SSLRedirectAnnotation tells ingress-nginx whether to force HTTPS.
const SSLRedirectAnnotation = "nginx.ingress.kubernetes.io/ssl-redirect"

// MakeIngress returns the ingress resources routing hostname to the app's
// service.
func MakeIngress(hostname, app string) []charmv1.IngressResource {
	ingress := charmv1.IngressResource{
		Name: app + "-ingress",
		Spec: networkingv1beta1.IngressSpec{
			Rules: []networkingv1beta1.IngressRule{
				{
					Host: hostname,
					IngressRuleValue: networkingv1beta1.IngressRuleValue{
						HTTP: &networkingv1beta1.HTTPIngressRuleValue{
							Paths: []networkingv1beta1.HTTPIngressPath{
								{
									Path: "/",
									Backend: networkingv1beta1.IngressBackend{
										ServiceName: app,
										ServicePort: intstr.FromInt32(HTTPPort),
									},
								},
							},
						},
					},
				},
			},
		},
		Annotations: map[string]string{
			SSLRedirectAnnotation: "false",
		},
	}

	return []charmv1.IngressResource{ingress}
}
