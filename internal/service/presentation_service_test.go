package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/slidegen-api/internal/domain"
	"github.com/phrazzld/slidegen-api/internal/generation"
	"github.com/phrazzld/slidegen-api/internal/service"
	"github.com/phrazzld/slidegen-api/internal/storage"
)

// mockGenerator implements generation.Generator with canned results.
type mockGenerator struct {
	slides    []domain.SlideRecord
	citations []domain.Citation
	err       error
	calls     int
}

func (m *mockGenerator) GenerateSlides(
	_ context.Context,
	_ string,
	_ int,
	_ bool,
) ([]domain.SlideRecord, []domain.Citation, error) {
	m.calls++
	return m.slides, m.citations, m.err
}

func newService(t *testing.T, gen generation.Generator, store storage.Storage) service.PresentationService {
	t.Helper()
	svc, err := service.NewPresentationService(gen, store, slog.Default())
	require.NoError(t, err)
	return svc
}

func defaultRequest() service.CreateRequest {
	return service.CreateRequest{
		Topic:            "Cats",
		SlideCount:       3,
		IncludeCitations: true,
		Theme:            domain.DefaultTheme(),
		Aspect:           domain.AspectRatio16x9,
	}
}

func TestNewPresentationService_NilDependencies(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{}
	store := storage.NewMemoryStorage()

	_, err := service.NewPresentationService(nil, store, slog.Default())
	assert.Error(t, err)

	_, err = service.NewPresentationService(gen, nil, slog.Default())
	assert.Error(t, err)

	_, err = service.NewPresentationService(gen, store, nil)
	assert.Error(t, err)
}

func TestCreate_GeneratedContent(t *testing.T) {
	t.Parallel()

	slides, citations := generation.Synthesize("Cats", 3, true)
	gen := &mockGenerator{slides: slides, citations: citations}
	store := storage.NewMemoryStorage()
	svc := newService(t, gen, store)

	result, err := svc.Create(context.Background(), defaultRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, result.SlideCount)
	assert.Equal(t, 2, result.CitationCount)
	assert.Equal(t, "Cats", result.Topic)
	assert.NotEqual(t, uuid.Nil, result.ID)

	// The stored package must be a readable zip archive.
	data, err := svc.GetPackage(context.Background(), result.ID)
	require.NoError(t, err)
	_, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)
}

func TestCreate_CustomSlidesSkipGeneration(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{err: fmt.Errorf("generator must not be called")}
	store := storage.NewMemoryStorage()
	svc := newService(t, gen, store)

	req := defaultRequest()
	req.CustomSlides = []domain.SlideRecord{
		{Layout: domain.LayoutTitle, Title: "My Deck"},
		{Layout: domain.LayoutBulletPoints, Title: "Points", BulletPoints: []string{"a", "b", "c"}},
	}

	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SlideCount)
	assert.Equal(t, 0, result.CitationCount)
	assert.Equal(t, 0, gen.calls)
}

func TestCreate_CustomSlidesValidated(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{}
	svc := newService(t, gen, storage.NewMemoryStorage())

	req := defaultRequest()
	req.CustomSlides = []domain.SlideRecord{
		{Layout: domain.LayoutBulletPoints, Title: "Bad", BulletPoints: []string{"only one"}},
	}

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, gen.calls)
}

func TestCreate_GeneratorErrorPassedThrough(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{err: fmt.Errorf("%w: topic must be a non-empty string", domain.ErrValidation)}
	svc := newService(t, gen, storage.NewMemoryStorage())

	_, err := svc.Create(context.Background(), defaultRequest())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_InvalidTheme(t *testing.T) {
	t.Parallel()

	slides, _ := generation.Synthesize("Cats", 3, false)
	gen := &mockGenerator{slides: slides}
	svc := newService(t, gen, storage.NewMemoryStorage())

	req := defaultRequest()
	req.Theme.PrimaryColor = "blue"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_InvalidAspectRatio(t *testing.T) {
	t.Parallel()

	slides, _ := generation.Synthesize("Cats", 3, false)
	gen := &mockGenerator{slides: slides}
	svc := newService(t, gen, storage.NewMemoryStorage())

	req := defaultRequest()
	req.Aspect = "21:9"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var svcErr *service.PresentationServiceError
	assert.ErrorAs(t, err, &svcErr)
}

func TestGetPackage_NotFound(t *testing.T) {
	t.Parallel()

	svc := newService(t, &mockGenerator{}, storage.NewMemoryStorage())

	_, err := svc.GetPackage(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	slides, _ := generation.Synthesize("Cats", 2, false)
	gen := &mockGenerator{slides: slides}
	store := storage.NewMemoryStorage()
	svc := newService(t, gen, store)

	req := defaultRequest()
	req.IncludeCitations = false
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), result.ID))

	err = svc.Delete(context.Background(), result.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
