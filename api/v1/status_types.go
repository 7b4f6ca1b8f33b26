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

package v1

// StatusKind is the workload status of a unit.
type StatusKind string

const (
	StatusMaintenance StatusKind = "maintenance"
	StatusActive      StatusKind = "active"
	StatusBlocked     StatusKind = "blocked"
)

// Status is a workload status and the message shown with it.
type Status struct {
	Kind    StatusKind `json:"status"`
	Message string     `json:"message,omitempty"`
}

// ActiveStatus returns the active status with the given message.
func ActiveStatus(msg string) Status {
	return Status{Kind: StatusActive, Message: msg}
}

// MaintenanceStatus returns a maintenance status with the given message.
func MaintenanceStatus(msg string) Status {
	return Status{Kind: StatusMaintenance, Message: msg}
}

// BlockedStatus returns a blocked status with the given message.
func BlockedStatus(msg string) Status {
	return Status{Kind: StatusBlocked, Message: msg}
}

func (s Status) String() string {
	if s.Message == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + ": " + s.Message
}
