package path

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Path is an ordered list of node names. The zero value is not usable; create
// one with New.
type Path struct {
	names *arraylist.List
}

// New returns a path pre-populated with the given names, in order.
func New(names ...string) *Path {
	p := &Path{names: arraylist.New()}
	for _, name := range names {
		p.names.Add(name)
	}
	return p
}

// Push appends a name to the end of the path.
func (p *Path) Push(name string) {
	p.names.Add(name)
}

// Pop removes and returns the last name. It reports false on an empty path.
func (p *Path) Pop() (string, bool) {
	last := p.names.Size() - 1
	if last < 0 {
		return "", false
	}
	v, _ := p.names.Get(last)
	p.names.Remove(last)
	return v.(string), true
}

// Contains reports whether name appears anywhere on the path.
func (p *Path) Contains(name string) bool {
	return p.names.Contains(name)
}

// Len returns the number of names on the path.
func (p *Path) Len() int {
	return p.names.Size()
}

// Names returns a copy of the path, entry first.
func (p *Path) Names() []string {
	out := make([]string, 0, p.names.Size())
	for _, v := range p.names.Values() {
		out = append(out, v.(string))
	}
	return out
}

// Reset empties the path.
func (p *Path) Reset() {
	p.names.Clear()
}

// String joins the names with single spaces.
func (p *Path) String() string {
	return strings.Join(p.Names(), " ")
}
