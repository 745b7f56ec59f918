package mandel

// Glyph thresholds on the escape count, from slowest to fastest escape.
var glyphBands = []struct {
	above int
	glyph byte
}{
	{80, '.'},
	{60, ':'},
	{40, '-'},
	{20, '='},
	{10, '+'},
	{5, '*'},
}

// Glyph maps an escape count to its ASCII symbol. Bounded points (iter ==
// maxIter) are blank; the faster a point escapes the denser its glyph.
func Glyph(iter, maxIter int) byte {
	if iter == maxIter {
		return ' '
	}
	for _, b := range glyphBands {
		if iter > b.above {
			return b.glyph
		}
	}
	return '#'
}
