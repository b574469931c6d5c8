package metrics

import (
	"bufio"
	"sync"

	"github.com/npillmayer/augtree/cords"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

/*
Wrap breaks text into lines of at most linewidth display cells, using the
first-fit strategy at UAX#14 line break opportunities. It returns the byte
positions where new lines start, ending with the length of the text.
A nil context measures widths for latin text.

Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
func Wrap(text cords.Cord, linewidth int, context *uax11.Context) []uint64 {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(text.Reader()))
	spaceleft := linewidth
	breaks := make([]uint64, 0, 20)
	var pos uint64
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := uax11.StringWidth(grapheme.StringFromString(frag), context)
		if fraglen >= spaceleft && spaceleft < linewidth {
			tracer().Debugf("break @ %d", pos)
			breaks = append(breaks, pos)
			spaceleft = linewidth
		}
		spaceleft -= fraglen
		pos += uint64(len(frag))
	}
	if pos > 0 {
		breaks = append(breaks, pos)
	}
	return breaks
}
