// Package navigation holds the static route-descriptor tree and derives
// breadcrumb trails from it.
package navigation

// NonNavigable is the sentinel path for group headings that expand but
// never match a route.
const NonNavigable = "#"

// Node is one route descriptor. The tree is built once at startup and
// never mutated; path uniqueness holds by convention, not construction.
type Node struct {
	Title    string
	Path     string
	Children []Node
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Title string
	Path  string
}

// Trail is a root-to-node breadcrumb path.
type Trail []Crumb

// defaultTrail is returned when no node matches the requested path.
func defaultTrail() Trail {
	return Trail{{Title: "Platform Overview", Path: "/dashboard"}}
}

// ResolveBreadcrumb walks the tree depth-first in pre-order and returns
// the trail to the first node whose path equals path. Partial trails
// from non-matching branches are discarded on backtrack. An unmatched
// path yields the default single-element trail. Pure: same path, same
// trail.
func ResolveBreadcrumb(tree []Node, path string) Trail {
	if trail := find(tree, path, nil); trail != nil {
		return trail
	}
	return defaultTrail()
}

func find(nodes []Node, path string, prefix Trail) Trail {
	for _, node := range nodes {
		trail := append(append(Trail{}, prefix...), Crumb{Title: node.Title, Path: node.Path})

		if node.Path == path && node.Path != NonNavigable {
			return trail
		}

		if found := find(node.Children, path, trail); found != nil {
			return found
		}
	}
	return nil
}
