// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package optionset

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

var (
	// ErrNotRegistered is the panic cause when a type is used before its catalog has been registered.
	ErrNotRegistered = errors.New("option set catalog not registered")

	// ErrInvalidCatalog is the panic cause for malformed registrations.
	ErrInvalidCatalog = errors.New("invalid option set catalog")
)

// Catalog is the ordered list of option names of one concrete option set type.
// Position i names bit i.
type Catalog struct {
	name    string
	options []string
	index   map[string]int
}

// Name returns the display name of the option set type.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of options.
func (c *Catalog) Len() int { return len(c.options) }

// Options returns a copy of the option names in bit order.
func (c *Catalog) Options() []string { return slices.Clone(c.options) }

// Option returns the name of the option at bit position i.
func (c *Catalog) Option(i int) string { return c.options[i] }

// Index returns the bit position of the named option.
func (c *Catalog) Index(option string) (int, bool) {
	i, ok := c.index[option]

	return i, ok
}

// Mask returns the raw value with every catalog bit set.
func (c *Catalog) Mask() uint64 {
	if len(c.options) >= MaxOptions {
		return ^uint64(0)
	}

	return 1<<len(c.options) - 1
}

var registry struct {
	sync.RWMutex
	catalogs map[reflect.Type]*Catalog
}

// Register records the catalog of S. It is meant to be called from package initialization
// of the package declaring S.
//
// Register panics when S is already registered, when there are more than [MaxOptions]
// options or when an option name is empty or repeated.
func Register[S Set[S]](name string, options ...string) *Catalog {
	t := reflect.TypeFor[S]()

	c, err := newCatalog(name, options)
	if err != nil {
		panic(fmt.Errorf("optionset: register %s: %w", t, err))
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.catalogs[t]; ok {
		panic(fmt.Errorf("optionset: register %s: %w: already registered", t, ErrInvalidCatalog))
	}

	if registry.catalogs == nil {
		registry.catalogs = make(map[reflect.Type]*Catalog)
	}

	registry.catalogs[t] = c

	return c
}

// CatalogOf returns the registered catalog of S. It panics with [ErrNotRegistered] when
// S has not been registered.
func CatalogOf[S Set[S]]() *Catalog {
	t := reflect.TypeFor[S]()

	registry.RLock()
	c, ok := registry.catalogs[t]
	registry.RUnlock()

	if !ok {
		panic(fmt.Errorf("optionset: %s: %w", t, ErrNotRegistered))
	}

	return c
}

// Registered reports whether S has a registered catalog.
func Registered[S Set[S]]() bool {
	registry.RLock()
	defer registry.RUnlock()

	_, ok := registry.catalogs[reflect.TypeFor[S]()]

	return ok
}

func newCatalog(name string, options []string) (*Catalog, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrInvalidCatalog)
	}

	if len(options) > MaxOptions {
		return nil, fmt.Errorf("%w: %d options exceed the maximum of %d", ErrInvalidCatalog, len(options), MaxOptions)
	}

	index := make(map[string]int, len(options))
	for i, option := range options {
		if option == "" {
			return nil, fmt.Errorf("%w: empty option name at position %d", ErrInvalidCatalog, i)
		}

		if j, ok := index[option]; ok {
			return nil, fmt.Errorf("%w: option %q at positions %d and %d", ErrInvalidCatalog, option, j, i)
		}

		index[option] = i
	}

	return &Catalog{name: name, options: slices.Clone(options), index: index}, nil
}
