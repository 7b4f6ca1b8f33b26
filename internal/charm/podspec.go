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

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/log"

	charmv1 "github.com/gxanlvxgx/hello-world-charm/api/v1"
	"github.com/gxanlvxgx/hello-world-charm/internal/resource"
)

// HTTPPort is the port the web server listens on inside the container.
const HTTPPort = 80

// MakePodSpec fetches the image and returns the pod spec for the web server.
//
// A resource error blocks the unit and yields the empty spec with a nil
// error. Any other fetch error is returned.
func (c *Charm) MakePodSpec(ctx context.Context) (charmv1.PodSpec, error) {
	log := log.FromContext(ctx)

	image, err := c.Image.Fetch(ctx)
	if err != nil {
		var resErr *resource.Error
		if !errors.As(err, &resErr) {
			return charmv1.PodSpec{}, err
		}
		log.Error(err, "An error occurred while fetching the image info")
		if err := c.Model.SetStatus(ctx, charmv1.BlockedStatus("Error fetching image information")); err != nil {
			return charmv1.PodSpec{}, err
		}
		return charmv1.PodSpec{}, nil
	}
	log.Info("Using image details", "imagePath", image.ImagePath)

	return charmv1.PodSpec{
		Version: charmv1.PodSpecVersion,
		Containers: []charmv1.Container{{
			Name:            c.App,
			ImageDetails:    image,
			ImagePullPolicy: corev1.PullAlways,
			Ports: []corev1.ContainerPort{{
				ContainerPort: HTTPPort,
				Protocol:      corev1.ProtocolTCP,
			}},
			Kubernetes: &charmv1.ContainerKubernetes{
				ReadinessProbe: &corev1.Probe{
					ProbeHandler: corev1.ProbeHandler{
						HTTPGet: &corev1.HTTPGetAction{
							Path: "/",
							Port: intstr.FromInt32(HTTPPort),
						},
					},
				},
			},
		}},
	}, nil
}
