// Package htmltable applies rowfilter to HTML markup.
//
// A Document wraps a parsed HTML tree and implements rowfilter.Document:
// inputs are located by id and read through their value attribute, tables
// are located by id and expose every <tr> descendant as a row whose first
// cell is the first <td> descendant. Row visibility is the inline display
// style, so the filtered markup renders the same way the browser-side
// filter would leave it.
//
//	doc, err := htmltable.Parse(r)
//	if err != nil {
//	    return err
//	}
//	if _, err := rowfilter.FilterByID(doc, "search-box", "table"); err != nil {
//	    return err
//	}
//	return doc.Render(w)
package htmltable
