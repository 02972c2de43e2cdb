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

package scheduler

// Task is a deferred unit of work.
type Task func()

// Queue is an ordered, pausable queue of tasks.
//
// A Queue is not safe for concurrent use. Tasks may call back into the
// queue (Enqueue, Pause, Resume, CancelPending, Drain) while it drains.
type Queue struct {
	tasks  []Task
	paused bool
}

// New returns an empty, running queue.
func New() *Queue {
	return &Queue{}
}

// Enqueue appends tasks to the queue. Nil tasks are skipped.
func (q *Queue) Enqueue(tasks ...Task) {
	for _, t := range tasks {
		if t != nil {
			q.tasks = append(q.tasks, t)
		}
	}
}

// Drain runs queued tasks in order until the queue is empty or paused.
func (q *Queue) Drain() {
	for len(q.tasks) > 0 && !q.paused {
		next := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		next()
	}
}

// Pause stops draining once the running task returns.
func (q *Queue) Pause() {
	q.paused = true
}

// Resume clears the paused flag and drains the remaining tasks.
func (q *Queue) Resume() {
	q.paused = false
	q.Drain()
}

// CancelPending discards every task that has not started and clears the
// paused flag. It returns the number of discarded tasks.
func (q *Queue) CancelPending() int {
	n := len(q.tasks)
	q.tasks = nil
	q.paused = false
	return n
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Paused reports whether draining is paused.
func (q *Queue) Paused() bool {
	return q.paused
}
