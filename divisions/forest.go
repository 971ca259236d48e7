// Package divisions builds the administrative division hierarchy used
// by the gazetteer tools: the level schema, name normalization, a flat
// arena forest of divisions, the CSV reader that populates it, and the
// sorter that assigns page ranks.
package divisions

// Record is one source row, keyed by column name
type Record map[string]string

// Get returns the value stored for a column, or "" when the column is
// absent from the row
func (r Record) Get(column string) string {
	return r[column]
}

// ID identifies a division within its forest
type ID int

// Root is the sentinel division the builder descends from. It carries
// an empty name and path and is never rendered.
const Root ID = 0

// Division is one node of the hierarchy. Path holds the normalized
// names from the top level down to the division itself, so its length
// equals the division's depth. Row keeps the first source record that
// created the division.
type Division struct {
	Name     string
	Path     []string
	Parent   ID
	Children []ID
	Row      Record
}

// Forest stores all divisions of one run in a flat arena. Divisions
// reference each other by ID, so there are no recursive pointers to
// walk or invalidate.
type Forest struct {
	nodes []Division
}

// New creates a forest containing only the root sentinel
func New() *Forest {
	return &Forest{nodes: []Division{{Parent: -1}}}
}

// Node returns the division stored under id. The pointer stays valid
// until the next AddChild call.
func (f *Forest) Node(id ID) *Division {
	return &f.nodes[id]
}

// Len returns the number of divisions, root sentinel included
func (f *Forest) Len() int {
	return len(f.nodes)
}

// AddChild appends a new division under parent and returns its id. The
// child's path extends the parent's path by name.
func (f *Forest) AddChild(parent ID, name string, row Record) ID {
	parentPath := f.nodes[parent].Path
	path := make([]string, 0, len(parentPath)+1)
	path = append(path, parentPath...)
	path = append(path, name)

	id := ID(len(f.nodes))
	f.nodes = append(f.nodes, Division{
		Name:   name,
		Path:   path,
		Parent: parent,
		Row:    row,
	})
	f.nodes[parent].Children = append(f.nodes[parent].Children, id)
	return id
}

// FindChild returns the id of parent's child with the given name
func (f *Forest) FindChild(parent ID, name string) (ID, bool) {
	for _, childID := range f.nodes[parent].Children {
		if f.nodes[childID].Name == name {
			return childID, true
		}
	}
	return 0, false
}
