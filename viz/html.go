package viz

import (
	"io"
	"strconv"

	"github.com/npillmayer/quads/geom"
	"golang.org/x/net/html"
)

// WriteHTML writes an HTML document with an SVG drawing of a region
// listing to w.
//
// The first region is taken as the domain rectangle and becomes the SVG
// view box. Overlapped regions are filled, quiet regions drawn as
// outlines, so the marks left by queries are visible at a glance.
func WriteHTML(w io.Writer, regions []*geom.Rect) error {
	doc := &html.Node{Type: html.DocumentNode}
	root := element("html")
	doc.AppendChild(root)
	body := element("body")
	root.AppendChild(body)
	if len(regions) > 0 {
		body.AppendChild(svgForRegions(regions))
	}
	return html.Render(w, doc)
}

func svgForRegions(regions []*geom.Rect) *html.Node {
	domain := regions[0]
	svg := element("svg",
		attr("xmlns", "http://www.w3.org/2000/svg"),
		attr("viewBox", coord(domain.X)+" "+coord(domain.Y)+" "+
			coord(domain.W)+" "+coord(domain.H)),
		attr("width", "480"),
	)
	for _, r := range regions {
		fill := "none"
		if r.Overlapped {
			fill = "#FFBB88"
		}
		svg.AppendChild(element("rect",
			attr("x", coord(r.X)),
			attr("y", coord(r.Y)),
			attr("width", coord(r.W)),
			attr("height", coord(r.H)),
			attr("fill", fill),
			attr("stroke", "black"),
		))
	}
	return svg
}

func element(name string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type: html.ElementNode,
		Data: name,
		Attr: attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
