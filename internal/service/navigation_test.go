package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/upstream"
)

type stubProber struct {
	mu      sync.Mutex
	blocked map[string]bool
	probed  []string
}

func (p *stubProber) Accessible(ctx context.Context, path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probed = append(p.probed, path)
	return !p.blocked[path]
}

func TestNavigationAllAccessible(t *testing.T) {
	prober := &stubProber{}
	svc := NewNavigationService(prober, nil)

	view := svc.Sections(context.Background())
	assert.Len(t, view.Sections, len(models.AllSections()))
	assert.Equal(t, models.SectionPayment, view.Active)
	assert.Len(t, prober.probed, len(models.AllSections()))
}

func TestNavigationHidesForbiddenSections(t *testing.T) {
	// A 403 on the backing endpoint hides the section; it is not an error.
	prober := &stubProber{blocked: map[string]bool{
		upstream.PathAdminPayments: true,
		upstream.PathAdminSetor:    true,
	}}
	svc := NewNavigationService(prober, nil)

	view := svc.Sections(context.Background())
	require.Len(t, view.Sections, len(models.AllSections())-2)
	for _, link := range view.Sections {
		assert.NotEqual(t, models.SectionPayment, link.Section)
		assert.NotEqual(t, models.SectionSetor, link.Section)
	}

	// First accessible section in display order becomes active.
	assert.Equal(t, models.SectionInvoice, view.Active)
}

func TestNavigationNothingAccessible(t *testing.T) {
	blocked := make(map[string]bool)
	for _, path := range sectionProbePath {
		blocked[path] = true
	}
	svc := NewNavigationService(&stubProber{blocked: blocked}, nil)

	view := svc.Sections(context.Background())
	assert.Empty(t, view.Sections)
	assert.Empty(t, view.Active)
}
