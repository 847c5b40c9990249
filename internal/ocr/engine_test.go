package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/internal/extract"
)

type stubRunner struct {
	stdout []byte
	err    error
	args   []string
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	s.args = args
	return s.stdout, nil, s.err
}

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t1240\t1754\t-1\t\n" +
	"2\t1\t1\t0\t0\t0\t100\t300\t400\t30\t-1\t\n" +
	"4\t1\t1\t1\t1\t0\t100\t300\t400\t30\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t100\t300\t80\t30\t96.5\tName:\n" +
	"5\t1\t1\t1\t1\t2\t200\t300\t110\t30\t91.5\tAnanya\n" +
	"5\t1\t1\t1\t1\t3\t320\t300\t120\t30\t88.0\tSharma\n" +
	"5\t1\t1\t1\t2\t1\t100\t360\t260\t30\t80.0\t9876543210\n"

func TestRecognizeGroupsWordsIntoLines(t *testing.T) {
	runner := &stubRunner{stdout: []byte(sampleTSV)}
	e := NewEngine(Config{}, nil)
	e.runner = runner

	res, err := e.Recognize(context.Background(), "scan.png")
	require.NoError(t, err)

	assert.Equal(t, 1240, res.ImageWidth)
	assert.Equal(t, 1754, res.ImageHeight)
	require.Len(t, res.Fragments, 2)

	first := res.Fragments[0]
	assert.Equal(t, "Name: Ananya Sharma", first.Text)
	assert.Equal(t, extract.Rect{Left: 100, Top: 300, Right: 440, Bottom: 330}, first.Box)
	assert.InDelta(t, 0.92, first.Confidence, 0.001)

	second := res.Fragments[1]
	assert.Equal(t, "9876543210", second.Text)
	assert.InDelta(t, 0.80, second.Confidence, 0.001)

	assert.InDelta(t, 0.89, res.MeanConf, 0.001)
	assert.Contains(t, runner.args, "tsv")
}

func TestRecognizeEmptyPage(t *testing.T) {
	header := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"1\t1\t0\t0\t0\t0\t0\t0\t1240\t1754\t-1\t\n"
	e := NewEngine(Config{}, nil)
	e.runner = &stubRunner{stdout: []byte(header)}

	res, err := e.Recognize(context.Background(), "scan.png")
	require.NoError(t, err)
	assert.Empty(t, res.Fragments)
	assert.Equal(t, 1754, res.ImageHeight)
}

func TestRecognizeFailures(t *testing.T) {
	e := NewEngine(Config{}, nil)
	e.runner = &stubRunner{err: errors.New("boom")}

	_, err := e.Recognize(context.Background(), "scan.png")
	assert.Error(t, err)

	_, err = e.Recognize(context.Background(), "scan.docx")
	assert.ErrorContains(t, err, "unsupported extension")
}
