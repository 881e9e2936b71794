package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 44
)

// TreeNode is a directory or file in a rendered tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// BuildTree assembles slash-separated relative paths into a tree rooted at root.
func BuildTree(root string, files map[string]string) *TreeNode {
	top := &TreeNode{Name: root, IsDir: true}

	for p, desc := range files {
		parts := strings.Split(path.Clean(p), "/")
		current := top
		for i, part := range parts {
			leaf := i == len(parts)-1
			child := current.child(part)
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !leaf}
				current.Children = append(current.Children, child)
			}
			if leaf {
				child.Description = desc
			}
			current = child
		}
	}

	sortTree(top)
	return top
}

func (n *TreeNode) child(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// RenderFileTree renders files as a tree with descriptions aligned in a column.
// Directories sort before files; both alphabetically.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	var sb strings.Builder
	tree := BuildTree(root, files)
	sb.WriteString(GetStyles().Bold.Render(tree.Name + "/"))
	sb.WriteString("\n")
	for i, c := range tree.Children {
		renderNode(&sb, c, "", i == len(tree.Children)-1)
	}
	return sb.String()
}

func sortTree(node *TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	name := node.Name
	if node.IsDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.Description != "" {
		// Pad on rune count; the box-drawing characters are multi-byte.
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + GetStyles().Muted.Render(node.Description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range node.Children {
		renderNode(sb, c, childPrefix, i == len(node.Children)-1)
	}
}
