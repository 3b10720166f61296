package tw

import "strings"

// arbitraryPropertyPrefix prefixes the synthetic group id of "[prop:value]" tokens.
const arbitraryPropertyPrefix = "arbitrary.."

type groupValidator struct {
	fn      Validator
	groupID string
}

type trieNode struct {
	children   map[string]*trieNode
	groupID    string
	validators []groupValidator
}

func (n *trieNode) child(segment string) *trieNode {
	if n.children == nil {
		n.children = make(map[string]*trieNode)
	}
	c, ok := n.children[segment]
	if !ok {
		c = &trieNode{}
		n.children[segment] = c
	}
	return c
}

// groupTrie indexes class group definitions by dash-separated segment.
type groupTrie struct {
	root  *trieNode
	nodes int
}

// buildFrame is one pending definition list of the explicit build stack.
type buildFrame struct {
	defs    []ClassDef
	next    int
	node    *trieNode
	groupID string
	theme   string
}

func buildTrie(cfg *Config) *groupTrie {
	t := &groupTrie{root: &trieNode{}, nodes: 1}
	stack := make([]buildFrame, 0, 16)

	for _, group := range cfg.ClassGroups {
		stack = append(stack[:0], buildFrame{defs: group.Defs, node: t.root, groupID: group.ID})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.defs) {
				stack = stack[:len(stack)-1]
				continue
			}
			def := top.defs[top.next]
			top.next++
			node, groupID := top.node, top.groupID

			switch def.Kind {
			case DefLiteral:
				t.path(node, def.Value).groupID = groupID
			case DefValidator:
				if def.Validate != nil {
					node.validators = append(node.validators, groupValidator{fn: def.Validate, groupID: groupID})
				}
			case DefNested:
				stack = append(stack, buildFrame{defs: def.Defs, node: t.path(node, def.Value), groupID: groupID})
			case DefTheme:
				// a scale referencing itself, directly or not, is expanded once
				if expanding(stack, def.Value) {
					continue
				}
				stack = append(stack, buildFrame{defs: cfg.Theme[def.Value], node: node, groupID: groupID, theme: def.Value})
			}
		}
	}
	return t
}

func expanding(stack []buildFrame, theme string) bool {
	for i := range stack {
		if stack[i].theme == theme {
			return true
		}
	}
	return false
}

// path walks (and creates) the nodes for a dash-separated class part.
func (t *groupTrie) path(n *trieNode, part string) *trieNode {
	if part == "" {
		return n
	}
	for _, segment := range strings.Split(part, "-") {
		if _, ok := n.children[segment]; !ok {
			t.nodes++
		}
		n = n.child(segment)
	}
	return n
}

// classify returns the class group of a base class name, or "" when it is
// unclassified.
func (t *groupTrie) classify(className string) string {
	parts := strings.Split(className, "-")
	// negative values: "-m-2"
	if parts[0] == "" && len(parts) != 1 {
		parts = parts[1:]
	}
	if id := t.lookup(parts); id != "" {
		return id
	}
	return arbitraryPropertyGroup(className)
}

// lookup walks the exact path as deep as it goes, then backs off one node at a
// time. A node reached with every segment consumed answers with its own group;
// any other node tries its validators, in insertion order, on the remaining
// segments.
func (t *groupTrie) lookup(parts []string) string {
	var buf [8]*trieNode
	path := append(buf[:0], t.root)
	n := t.root
	for _, p := range parts {
		c, ok := n.children[p]
		if !ok {
			break
		}
		n = c
		path = append(path, n)
	}

	for depth := len(path) - 1; depth >= 0; depth-- {
		node := path[depth]
		if depth == len(parts) {
			if node.groupID != "" {
				return node.groupID
			}
			continue
		}
		if len(node.validators) == 0 {
			continue
		}
		rest := strings.Join(parts[depth:], "-")
		for _, v := range node.validators {
			if v.fn(rest) {
				return v.groupID
			}
		}
	}
	return ""
}

// arbitraryPropertyGroup maps "[mask-type:luminance]" to "arbitrary..mask-type".
func arbitraryPropertyGroup(className string) string {
	if len(className) < 3 || className[0] != '[' || className[len(className)-1] != ']' {
		return ""
	}
	inner := className[1 : len(className)-1]
	if i := strings.IndexByte(inner, ':'); i > 0 {
		return arbitraryPropertyPrefix + inner[:i]
	}
	return ""
}
