// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import "errors"

var (
	// ErrNilCollaborator indicates that an option was given a nil browser collaborator.
	ErrNilCollaborator = errors.New("browser collaborator is nil")

	// ErrNilLogger indicates that WithLogger was given a nil logger.
	ErrNilLogger = errors.New("logger is nil")

	// ErrScrollDebounceInvalid indicates that the scroll debounce interval must be positive.
	ErrScrollDebounceInvalid = errors.New("scroll debounce must be positive")

	// ErrNilIDGenerator indicates that WithTransitionIDs was given a nil function.
	ErrNilIDGenerator = errors.New("transition id generator is nil")
)
