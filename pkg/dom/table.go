package dom

// InsertRow appends a new tr to a table section and returns it.
func (n *Node) InsertRow() *Node {
	return n.AppendChild(n.doc.CreateElement("tr"))
}

// InsertCell appends a new td to a row and returns it.
func (n *Node) InsertCell() *Node {
	return n.AppendChild(n.doc.CreateElement("td"))
}

// Rows returns the tr children of a table section.
func (n *Node) Rows() []*Node {
	var rows []*Node
	for _, c := range n.children {
		if c.typ == ElementNode && c.tag == "tr" {
			rows = append(rows, c)
		}
	}
	return rows
}

// CellTexts returns the text of each th or td child of a row.
func (n *Node) CellTexts() []string {
	var out []string
	for _, c := range n.children {
		if c.typ == ElementNode && (c.tag == "td" || c.tag == "th") {
			out = append(out, c.TextContent())
		}
	}
	return out
}
