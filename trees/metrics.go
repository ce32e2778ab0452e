// Copyright 2025 Quercus Lab
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

package trees

import "time"

// Metrics accumulates the cost of a sequence of tree operations. The
// caller creates a fresh value, passes it by pointer into every engine
// call, and reads it back afterwards. Engines only ever increment the
// counters; resetting (or deliberately accumulating across sequences)
// is the caller's business.
//
// Comparisons counts one per non-nil node visited on the search path.
// Rotations is only touched by the AVL engine; a double rotation counts
// as two. Elapsed and FinalHeight are filled in by the driver around a
// timed operation sequence, not by the engines.
type Metrics struct {
	Comparisons int64
	Rotations   int64
	Elapsed     time.Duration
	FinalHeight int
}
