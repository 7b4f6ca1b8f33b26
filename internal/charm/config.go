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

import "fmt"

// Config holds the charm options from config.yaml.
type Config struct {
	// Hostname is the host the ingress routes to the application
	Hostname string
}

// ParseConfig reads the charm options out of the config-get document.
func ParseConfig(raw map[string]any) (Config, error) {
	v, ok := raw["hostname"]
	if !ok {
		return Config{}, fmt.Errorf("config option %q is not set", "hostname")
	}
	hostname, ok := v.(string)
	if !ok {
		return Config{}, fmt.Errorf("config option %q: expected string, got %T", "hostname", v)
	}
	return Config{Hostname: hostname}, nil
}
