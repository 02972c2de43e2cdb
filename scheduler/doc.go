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

// Package scheduler implements the cooperative callback queue that drives
// a navigation transition.
//
// A [Queue] runs its tasks one at a time, in order, on the caller's
// goroutine. Any task may call [Queue.Pause] to stop draining after it
// returns; the remaining tasks wait until something calls [Queue.Resume].
// [Queue.CancelPending] drops every task that has not run yet, which is how
// a new transition supersedes a paused one.
//
// Nothing is scheduled implicitly: there are no timers and no goroutines.
package scheduler
