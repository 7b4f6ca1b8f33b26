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

// Event is a lifecycle event delivered to the charm.
type Event int

const (
	EventUnknown Event = iota
	EventStart
	EventConfigChanged
	EventLeaderElected
	EventUpgradeCharm
)

var hookNames = map[Event]string{
	EventStart:         "start",
	EventConfigChanged: "config-changed",
	EventLeaderElected: "leader-elected",
	EventUpgradeCharm:  "upgrade-charm",
}

// ParseEvent maps a hook name to its Event. Unhandled hooks map to
// EventUnknown.
func ParseEvent(hook string) Event {
	for ev, name := range hookNames {
		if name == hook {
			return ev
		}
	}
	return EventUnknown
}

func (e Event) String() string {
	if name, ok := hookNames[e]; ok {
		return name
	}
	return "unknown"
}
