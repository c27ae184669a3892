package bbcode

// Renderer receives a document from RenderSegments. Compound segments are
// bracketed by a Begin and an End call with their children in between, even
// when they have none; leaves get a single call. Returning an error aborts
// the traversal.
type Renderer interface {
	// Text outputs plain text.
	Text(s string) error
	// DecorationBegin outputs the beginning of a decorated span.
	DecorationBegin(style DecorationStyle) error
	// DecorationEnd outputs the end of a decorated span.
	DecorationEnd(style DecorationStyle) error
	// QuoteBegin outputs the beginning of a block quote. attributed is false
	// for a plain [quote].
	QuoteBegin(attribution string, attributed bool) error
	// QuoteEnd outputs the end of a block quote.
	QuoteEnd(attribution string, attributed bool) error
	// Code outputs a verbatim block.
	Code(s string) error
	// ListBegin outputs the beginning of a list.
	ListBegin(style ListStyle) error
	// ListItemBegin outputs the beginning of a list item. style is the
	// enclosing list's.
	ListItemBegin(style ListStyle) error
	// ListItemEnd outputs the end of a list item.
	ListItemEnd(style ListStyle) error
	// ListEnd outputs the end of a list.
	ListEnd(style ListStyle) error
	// LinkBegin outputs the beginning of a hyperlink to target.
	LinkBegin(target string) error
	// LinkEnd outputs the end of a hyperlink.
	LinkEnd(target string) error
	// Image outputs an image loaded from src.
	Image(src string) error
}

// RenderSegments walks segments depth-first and calls the matching hooks of
// r. The first error returned by r stops the walk and is returned unchanged.
func RenderSegments(r Renderer, segments []Segment) error {
	for _, seg := range segments {
		if err := renderSegment(r, seg); err != nil {
			return err
		}
	}
	return nil
}

func renderSegment(r Renderer, seg Segment) error {
	switch seg := seg.(type) {
	case Text:
		return r.Text(string(seg))
	case Decorated:
		if err := r.DecorationBegin(seg.Style); err != nil {
			return err
		}
		if err := RenderSegments(r, seg.Children); err != nil {
			return err
		}
		return r.DecorationEnd(seg.Style)
	case Quote:
		if err := r.QuoteBegin(seg.Attribution, seg.Attributed); err != nil {
			return err
		}
		if err := RenderSegments(r, seg.Children); err != nil {
			return err
		}
		return r.QuoteEnd(seg.Attribution, seg.Attributed)
	case Code:
		return r.Code(string(seg))
	case List:
		if err := r.ListBegin(seg.Style); err != nil {
			return err
		}
		for _, item := range seg.Items {
			if err := r.ListItemBegin(seg.Style); err != nil {
				return err
			}
			if err := RenderSegments(r, item); err != nil {
				return err
			}
			if err := r.ListItemEnd(seg.Style); err != nil {
				return err
			}
		}
		return r.ListEnd(seg.Style)
	case Link:
		if err := r.LinkBegin(seg.Target); err != nil {
			return err
		}
		if err := RenderSegments(r, seg.Children); err != nil {
			return err
		}
		return r.LinkEnd(seg.Target)
	case Image:
		return r.Image(seg.Src)
	default:
		return nil
	}
}
