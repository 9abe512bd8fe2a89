package validation

import "strings"

// PathSeparator separates the segments of a field path such as
// "overtimeFixed.amountMin".
const PathSeparator = "."

// Node is either a Leaf holding one message or a Group of keyed children.
type Node interface {
	isNode()
}

// Leaf is a single human-readable message attached to a field.
type Leaf struct {
	Message string
}

// Group maps keys to child nodes in insertion order. Message is the group's
// own message and is reported before any child.
type Group struct {
	Message string
	Entries []Entry
}

// Entry is one keyed child of a Group.
type Entry struct {
	Key  string
	Node Node
}

func (Leaf) isNode()   {}
func (*Group) isNode() {}

// Flatten walks the tree depth first and returns every message in the order
// the fields were added.
func Flatten(node Node) []string {
	var messages []string
	walk(node, func(msg string) {
		messages = append(messages, msg)
	})
	return messages
}

func walk(node Node, visit func(string)) {
	switch n := node.(type) {
	case Leaf:
		if n.Message != "" {
			visit(n.Message)
		}
	case *Group:
		if n == nil {
			return
		}
		if n.Message != "" {
			visit(n.Message)
		}
		for _, entry := range n.Entries {
			walk(entry.Node, visit)
		}
	}
}

func (g *Group) child(key string) (int, bool) {
	for i, entry := range g.Entries {
		if entry.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Tree collects per-field validation messages under dotted paths.
// The zero value is an empty tree ready for use. Only Add mutates it, so
// the read methods also work on a Tree returned by value.
type Tree struct {
	root Group
}

// Add records message under path. The first message recorded for a path
// wins; later ones for the same path are ignored.
func (t *Tree) Add(path, message string) {
	if message == "" {
		return
	}
	segments := strings.Split(path, PathSeparator)
	group := &t.root
	for i, segment := range segments {
		last := i == len(segments)-1
		idx, ok := group.child(segment)
		if !ok {
			if last {
				group.Entries = append(group.Entries, Entry{Key: segment, Node: Leaf{Message: message}})
				return
			}
			next := &Group{}
			group.Entries = append(group.Entries, Entry{Key: segment, Node: next})
			group = next
			continue
		}

		switch existing := group.Entries[idx].Node.(type) {
		case Leaf:
			if last {
				return
			}
			// A field that already carries a message gains children.
			next := &Group{Message: existing.Message}
			group.Entries[idx].Node = next
			group = next
		case *Group:
			if last {
				if existing.Message == "" {
					existing.Message = message
				}
				return
			}
			group = existing
		}
	}
}

// Messages returns every message flattened in field declaration order.
func (t Tree) Messages() []string {
	return Flatten(&t.root)
}

// Empty reports whether no message has been recorded.
func (t Tree) Empty() bool {
	return len(t.root.Entries) == 0 && t.root.Message == ""
}

// For returns the message recorded directly on path, or "" if none.
func (t Tree) For(path string) string {
	var node Node = &t.root
	for _, segment := range strings.Split(path, PathSeparator) {
		group, ok := node.(*Group)
		if !ok {
			return ""
		}
		idx, found := group.child(segment)
		if !found {
			return ""
		}
		node = group.Entries[idx].Node
	}

	switch n := node.(type) {
	case Leaf:
		return n.Message
	case *Group:
		return n.Message
	}
	return ""
}
