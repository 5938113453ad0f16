package htmltable

import (
	"strings"

	"golang.org/x/net/html"
)

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

type declaration struct {
	property string
	value    string
}

// parseStyle splits an inline style into declarations. Malformed
// declarations without a colon are kept verbatim as a property.
func parseStyle(style string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			decls = append(decls, declaration{property: part})
			continue
		}
		decls = append(decls, declaration{
			property: strings.TrimSpace(prop),
			value:    strings.TrimSpace(val),
		})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.value == "" {
			parts = append(parts, d.property)
			continue
		}
		parts = append(parts, d.property+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

func styleDisplay(style string) string {
	display := ""
	for _, d := range parseStyle(style) {
		if strings.EqualFold(d.property, "display") {
			display = d.value
		}
	}
	return display
}

// setStyleDisplay replaces every display declaration with value.
// An empty value removes the declaration.
func setStyleDisplay(style, value string) string {
	decls := parseStyle(style)
	out := decls[:0]
	for _, d := range decls {
		if strings.EqualFold(d.property, "display") {
			continue
		}
		out = append(out, d)
	}
	if value != "" {
		out = append(out, declaration{property: "display", value: value})
	}
	return formatStyle(out)
}
