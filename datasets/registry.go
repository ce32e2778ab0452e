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

package datasets

import (
	"fmt"
	"math/rand"
)

// Registry owns the random source and resolves generators by mode name.
type Registry struct {
	rng        *rand.Rand
	generators []Generator
}

// NewRegistry creates a registry with every built-in arrangement
// registered. The seed pins every random draw; pass a time-derived seed
// for non-reproducible runs.
func NewRegistry(seed int64, sortedness float64) *Registry {
	rng := rand.New(rand.NewSource(seed))

	r := &Registry{rng: rng}

	// The first four are the default suite, in the order it runs them.
	r.Register(NewRandomGenerator(rng))
	r.Register(&SortedGenerator{})
	r.Register(&ReversedGenerator{})
	r.Register(NewNearlySortedGenerator(rng, sortedness))
	r.Register(NewShuffledGenerator(rng))

	return r
}

// Register appends a generator. Lookup scans front to back, so a
// duplicate name cannot shadow a built-in.
func (r *Registry) Register(g Generator) {
	r.generators = append(r.generators, g)
}

// Lookup returns the generator for a mode name.
func (r *Registry) Lookup(mode string) (Generator, error) {
	for _, g := range r.generators {
		if g.Name() == mode {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown dataset mode %q", mode)
}

// Generate produces n keys in the named arrangement.
func (r *Registry) Generate(mode string, n int) ([]int, error) {
	g, err := r.Lookup(mode)
	if err != nil {
		return nil, err
	}
	return g.Generate(n), nil
}

// Modes lists the registered mode names in registration order.
func (r *Registry) Modes() []string {
	modes := make([]string, 0, len(r.generators))
	for _, g := range r.generators {
		modes = append(modes, g.Name())
	}
	return modes
}
