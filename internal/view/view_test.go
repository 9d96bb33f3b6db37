package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gordonmaloney/testify-admin/internal/session"
	"github.com/gordonmaloney/testify-admin/pkg/models"
)

func render(st session.State, opts Options) string {
	var buf bytes.Buffer
	Render(&buf, st, opts)
	return buf.String()
}

func TestRenderErrorBanner(t *testing.T) {
	t.Parallel()

	out := render(session.State{Err: "401 Unauthorized: unauthorized"}, Options{})
	assert.Contains(t, out, "ERROR: 401 Unauthorized: unauthorized")
	assert.NotContains(t, out, "No events found")
}

func TestRenderEmptyState(t *testing.T) {
	t.Parallel()

	out := render(session.State{}, Options{})
	assert.Contains(t, out, "No events found.")
}

func TestRenderLoadingSuppressesEmptyState(t *testing.T) {
	t.Parallel()

	out := render(session.State{Loading: true}, Options{})
	assert.Contains(t, out, "Fetching events...")
	assert.NotContains(t, out, "No events found")
}

func TestRenderCardFields(t *testing.T) {
	t.Parallel()

	st := session.State{Events: []models.Event{{
		ID:         "evt1",
		Timestamp:  "2024-03-01 09:00:00",
		Site:       "s1",
		Type:       "submission",
		Path:       "/contact",
		CampaignID: "spring-24",
		Contact:    &models.ContactDetails{Name: "Ada", Email: "ada@example.com"},
		UserAgent:  "Mozilla/5.0",
		Ref:        "https://duckduckgo.com/",
	}}}

	out := render(st, Options{})
	assert.Contains(t, out, "evt1")
	assert.Contains(t, out, "site:      s1")
	assert.Contains(t, out, "type:      submission")
	assert.Contains(t, out, "path:      /contact")
	assert.Contains(t, out, "campaign:  spring-24")
	assert.Contains(t, out, "Ada / ada@example.com / -")
	assert.Contains(t, out, "agent:     Mozilla/5.0")
	assert.Contains(t, out, "referrer:  https://duckduckgo.com/")
	assert.NotContains(t, out, "testimonial")
}

func TestRenderCardDefaultsDashes(t *testing.T) {
	t.Parallel()

	out := render(session.State{Events: []models.Event{{ID: "evt1"}}}, Options{})
	assert.Contains(t, out, "campaign:  -")
	assert.Contains(t, out, "contact:   - / - / -")
	assert.Contains(t, out, "agent:     -")
	assert.Contains(t, out, "referrer:  -")
}

func TestRenderTruncatesLongFields(t *testing.T) {
	t.Parallel()

	ua := strings.Repeat("x", 100)
	st := session.State{Events: []models.Event{{ID: "evt1", UserAgent: ua}}}

	out := render(st, Options{})
	assert.Contains(t, out, strings.Repeat("x", truncateAt)+"…")
	assert.NotContains(t, out, ua)

	out = render(st, Options{Full: true})
	assert.Contains(t, out, ua)
}

func TestRenderTestimonial(t *testing.T) {
	t.Parallel()

	st := session.State{Events: []models.Event{{
		ID:          "evt1",
		Testimonial: "best site ever",
	}}}
	out := render(st, Options{})
	require.Contains(t, out, "testimonial:")
	assert.Contains(t, out, "best site ever")

	st.Events[0].Testimonial = map[string]any{"rating": 5, "text": "great"}
	out = render(st, Options{})
	assert.Contains(t, out, `"rating"`)
	assert.Contains(t, out, `"text"`)
}

func TestRenderCardsShownAlongsideLoading(t *testing.T) {
	t.Parallel()

	st := session.State{Loading: true, Events: []models.Event{{ID: "held"}}}
	out := render(st, Options{})
	assert.Contains(t, out, "Fetching events...")
	assert.Contains(t, out, "held")
}
