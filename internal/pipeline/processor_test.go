package processor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/constants"
	"github.com/docstack-labs/idverify/gen/ent"
	"github.com/docstack-labs/idverify/internal/extract"
	"github.com/docstack-labs/idverify/internal/ocr"
	"github.com/docstack-labs/idverify/internal/repository"
)

type stubDocs struct {
	created  []string
	outcome  *repository.ExtractionOutcome
	failures []string
}

func (s *stubDocs) Create(_ context.Context, sourcePath, _, _ string) (*ent.Document, error) {
	s.created = append(s.created, sourcePath)
	return &ent.Document{ID: uuid.New()}, nil
}

func (s *stubDocs) FinishExtraction(_ context.Context, _ uuid.UUID, out repository.ExtractionOutcome) error {
	s.outcome = &out
	return nil
}

func (s *stubDocs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	s.failures = append(s.failures, message)
	return nil
}

func (s *stubDocs) GetByID(context.Context, uuid.UUID) (*ent.Document, error) { return nil, nil }

func (s *stubDocs) SaveVerification(context.Context, uuid.UUID, json.RawMessage, json.RawMessage, string) error {
	return nil
}

func (s *stubDocs) ListByStatus(context.Context, constants.DocStatus) ([]*ent.Document, error) {
	return nil, nil
}

type stubEngine struct {
	res ocr.RecognitionResult
	err error
}

func (s *stubEngine) Recognize(context.Context, string) (ocr.RecognitionResult, error) {
	return s.res, s.err
}

func box(left, top, right, bottom int) extract.Rect {
	return extract.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func TestProcessFilePersistsExtraction(t *testing.T) {
	docs := &stubDocs{}
	engine := &stubEngine{res: ocr.RecognitionResult{
		Fragments: []extract.TextFragment{
			{Box: box(100, 300, 420, 330), Text: "Phone: 9876543210", Confidence: 0.9},
			{Box: box(100, 360, 180, 390), Text: "Name", Confidence: 0.95},
			{Box: box(220, 360, 460, 390), Text: "Ananya Sharma", Confidence: 0.9},
		},
		ImageWidth:  1240,
		ImageHeight: 1754,
		MeanConf:    0.91,
	}}

	p := NewProcessor(nil, docs, engine, nil)
	docID, result, err := p.ProcessFile(context.Background(), "scan.png")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, docID)

	phone, ok := result.Value(constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "9876543210", phone)

	require.NotNil(t, docs.outcome)
	assert.False(t, docs.outcome.NeedsReview)
	assert.Equal(t, 1754, docs.outcome.ImageHeight)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(docs.outcome.ExtractedData, &payload))
	assert.Equal(t, "Ananya Sharma", payload["full_name"])

	var conf map[string]float64
	require.NoError(t, json.Unmarshal(docs.outcome.FieldConfidence, &conf))
	assert.Equal(t, 1.0, conf["phone"])
	assert.Equal(t, 0.0, conf["address"])
}

func TestProcessFileWeakScanNeedsReview(t *testing.T) {
	docs := &stubDocs{}
	engine := &stubEngine{res: ocr.RecognitionResult{
		Fragments: []extract.TextFragment{
			{Box: box(100, 300, 260, 330), Text: "9876543210", Confidence: 0.45},
		},
		ImageHeight: 1754,
		MeanConf:    0.45,
	}}

	p := NewProcessor(nil, docs, engine, nil)
	_, _, err := p.ProcessFile(context.Background(), "scan.png")
	require.NoError(t, err)
	require.NotNil(t, docs.outcome)
	assert.True(t, docs.outcome.NeedsReview)
}

func TestProcessFileFailures(t *testing.T) {
	t.Run("unreadable input", func(t *testing.T) {
		docs := &stubDocs{}
		p := NewProcessor(nil, docs, &stubEngine{err: errors.New("tesseract: boom")}, nil)

		_, _, err := p.ProcessFile(context.Background(), "scan.png")
		require.Error(t, err)
		assert.Len(t, docs.failures, 1)
	})

	t.Run("blank page is not all-unset", func(t *testing.T) {
		docs := &stubDocs{}
		p := NewProcessor(nil, docs, &stubEngine{res: ocr.RecognitionResult{ImageHeight: 1754}}, nil)

		_, _, err := p.ProcessFile(context.Background(), "scan.png")
		require.ErrorIs(t, err, extract.ErrNoFragments)
		assert.Nil(t, docs.outcome)
		assert.Len(t, docs.failures, 1)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		docs := &stubDocs{}
		p := NewProcessor(nil, docs, &stubEngine{}, nil)

		_, _, err := p.ProcessFile(context.Background(), "scan.docx")
		require.Error(t, err)
		assert.Empty(t, docs.created, "no document row for unsupported input")
	})
}
