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

package hooktool

import (
	"os"
	"path"
	"strings"
)

// Environment is what the unit agent tells a hook process through its
// environment variables.
type Environment struct {
	UnitName     string
	DispatchPath string
	CharmDir     string
}

// LoadEnvironment reads the Juju hook environment of the current process.
func LoadEnvironment() Environment {
	return Environment{
		UnitName:     os.Getenv("JUJU_UNIT_NAME"),
		DispatchPath: os.Getenv("JUJU_DISPATCH_PATH"),
		CharmDir:     os.Getenv("JUJU_CHARM_DIR"),
	}
}

// AppName is the application part of the unit name ("hello/0" -> "hello").
func (e Environment) AppName() string {
	app, _, _ := strings.Cut(e.UnitName, "/")
	return app
}

// HookName is the hook being dispatched ("hooks/config-changed" -> "config-changed").
func (e Environment) HookName() string {
	if e.DispatchPath == "" {
		return ""
	}
	return path.Base(e.DispatchPath)
}
