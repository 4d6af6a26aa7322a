package sortalg

import (
	"fmt"
	"strings"
)

// Registry maps user-facing algorithm names to kinds.
type Registry struct {
	kinds   map[string]Kind
	aliases map[string]Kind
	info    map[Kind]string
	titles  map[Kind]string
}

func NewRegistry() *Registry {
	r := &Registry{
		kinds:   make(map[string]Kind),
		aliases: make(map[string]Kind),
		info:    make(map[Kind]string),
		titles:  make(map[Kind]string),
	}

	r.register(Bubble, "Bubble Sort", "adjacent swaps, early exit")
	r.register(Selection, "Selection Sort", "extreme of the suffix")
	r.register(Insertion, "Insertion Sort", "shift into sorted prefix")
	r.register(Merge, "Merge Sort", "stable divide and conquer")
	r.register(Quick, "Quick Sort", "lomuto, last pivot")
	r.register(RandomizedQuick, "Randomized Quick Sort", "lomuto, random pivot")

	r.aliases["rquick"] = RandomizedQuick
	r.aliases["random_quick"] = RandomizedQuick
	r.aliases["randomized-quick"] = RandomizedQuick

	return r
}

func (r *Registry) register(k Kind, title, info string) {
	r.kinds[k.String()] = k
	r.titles[k] = title
	r.info[k] = info
}

func (r *Registry) Lookup(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if k, ok := r.kinds[key]; ok {
		return k, nil
	}
	if k, ok := r.aliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown algorithm: %s", name)
}

// Title is the display name, e.g. "Merge Sort".
func (r *Registry) Title(k Kind) string {
	if t, ok := r.titles[k]; ok {
		return t
	}
	return k.String()
}

func (r *Registry) Info(k Kind) string { return r.info[k] }

// List returns the registered names in display order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.kinds))
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	return names
}

// Next cycles to the kind after k.
func (r *Registry) Next(k Kind) Kind {
	all := Kinds()
	for i, c := range all {
		if c == k {
			return all[(i+1)%len(all)]
		}
	}
	return Bubble
}
