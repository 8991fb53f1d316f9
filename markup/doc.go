// Package markup builds panel trees from a small tag language:
//
//	<grid tag="page" rows="auto, *" columns="200, *" margin="8">
//	    <column size="*" min="120"/>
//	    <leaf tag="title" size="300, 24" column-span="2"/>
//	    <panel tag="sidebar" row="1"/>
//	    <panel tag="body" row="1" column="1" halign="center"/>
//	</grid>
//
// Elements:
//
//	panel   overlay container (children stacked at the origin)
//	grid    grid container; rows/columns attributes hold comma-separated
//	        size rules, <row>/<column> children append definitions with
//	        optional min/max
//	leaf    intrinsic leaf; size="w, h" is its natural size
//	row     row definition inside a grid: size, min, max
//	column  column definition inside a grid: size, min, max
//
// Every node element accepts tag, width, height, min-width, min-height,
// max-width, max-height, margin ("4", "4, 8" or "l, t, r, b"), halign and
// valign (stretch, start, center, end, left, right, top, bottom), and the
// placement attributes row, column, row-span and column-span.
//
// The document is tokenized, not parsed as HTML, so self-closing tags and
// arbitrary nesting behave as written.
package markup
