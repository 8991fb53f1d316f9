package panel

// Property names a layout input of a node.
type Property uint8

const (
	PropWidth Property = iota
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMargin
	PropHorizontalAlignment
	PropVerticalAlignment
	PropChildren // a child was added, removed or moved to another cell
	PropContent  // the content, or an input of it, was replaced
	PropRows
	PropColumns

	propertyCount
)

var propertyNames = [propertyCount]string{
	PropWidth:               "Width",
	PropHeight:              "Height",
	PropMinWidth:            "MinWidth",
	PropMinHeight:           "MinHeight",
	PropMaxWidth:            "MaxWidth",
	PropMaxHeight:           "MaxHeight",
	PropMargin:              "Margin",
	PropHorizontalAlignment: "HorizontalAlignment",
	PropVerticalAlignment:   "VerticalAlignment",
	PropChildren:            "Children",
	PropContent:             "Content",
	PropRows:                "Rows",
	PropColumns:             "Columns",
}

// String returns the property name.
func (p Property) String() string {
	if p < propertyCount {
		return propertyNames[p]
	}
	return "Property(?)"
}

// Effect is what a change of a property invalidates.
type Effect uint8

const (
	AffectsNothing Effect = iota
	AffectsArrange
	AffectsMeasure // implies AffectsArrange
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case AffectsArrange:
		return "arrange"
	case AffectsMeasure:
		return "measure"
	default:
		return "nothing"
	}
}

// Classification maps every property to its effect. It is fixed per node
// type when the node's content is set.
type Classification [propertyCount]Effect

// Of returns the effect of a property change.
func (c *Classification) Of(p Property) Effect {
	if p >= propertyCount {
		return AffectsNothing
	}
	return c[p]
}

// Set overrides the effect of a property.
func (c *Classification) Set(p Property, e Effect) {
	if p < propertyCount {
		c[p] = e
	}
}

// DefaultClassification is the classification every node starts from:
// sizes, margins and children affect measure, alignment only affects
// arrange, grid definitions affect nothing.
func DefaultClassification() Classification {
	var c Classification
	for _, p := range []Property{
		PropWidth, PropHeight,
		PropMinWidth, PropMinHeight,
		PropMaxWidth, PropMaxHeight,
		PropMargin, PropChildren, PropContent,
	} {
		c[p] = AffectsMeasure
	}
	c[PropHorizontalAlignment] = AffectsArrange
	c[PropVerticalAlignment] = AffectsArrange
	return c
}

// classifier is implemented by content that adds properties of its own.
type classifier interface {
	Classify(c *Classification)
}
