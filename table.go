package domkit

import "github.com/domkit-dev/domkit/pkg/dom"

// Table builds a <table>.
func Table(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("table", content, attrs)
}

// TableHead builds a <thead>.
func TableHead(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("thead", content, attrs)
}

// TableBody builds a <tbody>.
func TableBody(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("tbody", content, attrs)
}

// TableFoot builds a <tfoot>.
func TableFoot(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("tfoot", content, attrs)
}

// TableRow builds a <tr>.
func TableRow(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("tr", content, attrs)
}

// TableCell builds a <td>.
func TableCell(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("td", content, attrs)
}

// TableHeaderCell builds a <th>.
func TableHeaderCell(content any, attrs dom.Attrs) *dom.Node {
	return dom.NewElement("th", content, attrs)
}
