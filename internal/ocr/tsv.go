package ocr

import (
	"strconv"
	"strings"

	"github.com/docstack-labs/idverify/internal/extract"
)

// TSV row levels emitted by tesseract.
const (
	levelPage = 1
	levelWord = 5
)

type lineKey struct {
	page, block, par, line int
}

// lineAccum merges consecutive word rows of one text line into a single
// fragment: text joined by spaces, box as the union of word boxes, confidence
// as the mean of word confidences.
type lineAccum struct {
	key   lineKey
	box   extract.Rect
	words []string
	sum   float64
}

func (l *lineAccum) add(box extract.Rect, text string, conf float64) {
	if len(l.words) == 0 {
		l.box = box
	} else {
		if box.Left < l.box.Left {
			l.box.Left = box.Left
		}
		if box.Top < l.box.Top {
			l.box.Top = box.Top
		}
		if box.Right > l.box.Right {
			l.box.Right = box.Right
		}
		if box.Bottom > l.box.Bottom {
			l.box.Bottom = box.Bottom
		}
	}
	l.words = append(l.words, text)
	l.sum += conf
}

func (l *lineAccum) fragment() extract.TextFragment {
	return extract.TextFragment{
		Box:        l.box,
		Text:       strings.Join(l.words, " "),
		Confidence: float32(l.sum / float64(len(l.words)) / 100),
	}
}

// parseTSV maps tesseract TSV output to line fragments. Word rows (level 5)
// carry left/top/width/height plus a confidence in 0..100 and are grouped by
// their (page, block, paragraph, line) ids; the page row (level 1) carries the
// image dimensions. Rows with conf -1 are layout containers, not words.
func parseTSV(out []byte) RecognitionResult {
	var res RecognitionResult
	var cur *lineAccum
	var sum float64
	var n int

	flush := func() {
		if cur != nil && len(cur.words) > 0 {
			res.Fragments = append(res.Fragments, cur.fragment())
		}
		cur = nil
	}

	for i, line := range strings.Split(string(out), "\n") {
		if i == 0 || line == "" { // header
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 12 {
			continue
		}

		level, err := strconv.Atoi(cols[0])
		if err != nil {
			continue
		}
		left, _ := strconv.Atoi(cols[6])
		top, _ := strconv.Atoi(cols[7])
		width, _ := strconv.Atoi(cols[8])
		height, _ := strconv.Atoi(cols[9])

		switch level {
		case levelPage:
			res.ImageWidth = width
			res.ImageHeight = height
		case levelWord:
			conf, err := strconv.ParseFloat(cols[10], 64)
			if err != nil || conf < 0 {
				continue
			}
			text := strings.TrimSpace(strings.Join(cols[11:], "\t"))
			if text == "" {
				continue
			}

			key := lineKey{}
			key.page, _ = strconv.Atoi(cols[1])
			key.block, _ = strconv.Atoi(cols[2])
			key.par, _ = strconv.Atoi(cols[3])
			key.line, _ = strconv.Atoi(cols[4])
			if cur == nil || cur.key != key {
				flush()
				cur = &lineAccum{key: key}
			}

			cur.add(extract.Rect{
				Left:   left,
				Top:    top,
				Right:  left + width,
				Bottom: top + height,
			}, text, conf)
			sum += conf
			n++
		}
	}
	flush()

	if n > 0 {
		res.MeanConf = float32(sum / float64(n) / 100)
	}
	return res
}
