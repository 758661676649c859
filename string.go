package markup

// String returns markup for the node and all its children.
func String(node *Node) string {
	return render(node)
}
