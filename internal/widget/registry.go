// Package widget provides the built-in bar widgets and the table that
// constructs them by kind.
package widget

import (
	"fmt"
	"sort"

	"github.com/1broseidon/sysmon/internal/bar"
)

// Kind identifies a widget implementation.
type Kind int

const (
	KindCPU Kind = iota
	KindStorage
	KindNetwork
	KindMemory
	KindBacklight
	KindVolume
	KindTime
	KindBattery
)

func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindStorage:
		return "storage"
	case KindNetwork:
		return "network"
	case KindMemory:
		return "memory"
	case KindBacklight:
		return "backlight"
	case KindVolume:
		return "volume"
	case KindTime:
		return "time"
	case KindBattery:
		return "battery"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Constructor builds a widget from shared dependencies.
type Constructor func(deps Deps) bar.Widget

// Registry maps kinds and config names to constructors.
type Registry struct {
	ctors map[Kind]Constructor
	names map[string]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ctors: make(map[Kind]Constructor),
		names: make(map[string]Kind),
	}
}

// Register binds kind and name to ctor. Registering a kind or name twice
// panics.
func (r *Registry) Register(kind Kind, name string, ctor Constructor) {
	if _, ok := r.ctors[kind]; ok {
		panic(fmt.Sprintf("widget: kind %v registered twice", kind))
	}
	if _, ok := r.names[name]; ok {
		panic(fmt.Sprintf("widget: name %q registered twice", name))
	}
	r.ctors[kind] = ctor
	r.names[name] = kind
}

// Construct builds a widget of kind. Constructing an unregistered kind is
// a programming error and panics.
func (r *Registry) Construct(kind Kind, deps Deps) bar.Widget {
	ctor, ok := r.ctors[kind]
	if !ok {
		panic(fmt.Sprintf("widget: no constructor for %v", kind))
	}
	return ctor(deps.withDefaults())
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	k, ok := r.names[name]
	return k, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for n := range r.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a registry holding every built-in widget.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(KindCPU, "cpu", newCPU)
	r.Register(KindStorage, "storage", newStorage)
	r.Register(KindNetwork, "network", newNetwork)
	r.Register(KindMemory, "memory", newMemory)
	r.Register(KindBacklight, "backlight", newBacklight)
	r.Register(KindVolume, "volume", newVolume)
	r.Register(KindTime, "time", newClock)
	r.Register(KindBattery, "battery", newBattery)
	return r
}

// Populate constructs the named widgets and adds them to b, start widgets
// first. Unknown names are reported before anything is added.
func (r *Registry) Populate(b *bar.Bar, deps Deps, start, end []string) error {
	type entry struct {
		kind   Kind
		anchor bar.Anchor
	}
	var entries []entry
	for _, group := range []struct {
		names  []string
		anchor bar.Anchor
	}{{start, bar.Start}, {end, bar.End}} {
		for _, name := range group.names {
			kind, ok := r.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown widget %q (available: %v)", name, r.Names())
			}
			entries = append(entries, entry{kind: kind, anchor: group.anchor})
		}
	}
	for _, e := range entries {
		b.Add(r.Construct(e.kind, deps), e.anchor)
	}
	return nil
}
