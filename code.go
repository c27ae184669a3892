package bbcode

// code recognizes [code]...[/code]. The body is taken verbatim up to the
// first closer, so markup inside it is not parsed.
func (s *state) code(in string) (Segment, string, bool) {
	body, rest, ok := verbatim(in, "[code]", "[/code]")
	if !ok {
		return nil, in, false
	}
	return Code(body), rest, true
}

// image recognizes [img]src[/img].
func (s *state) image(in string) (Segment, string, bool) {
	src, rest, ok := verbatim(in, "[img]", "[/img]")
	if !ok {
		return nil, in, false
	}
	return Image{Src: src}, rest, true
}
