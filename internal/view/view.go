package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/gordonmaloney/testify-admin/internal/session"
	"github.com/gordonmaloney/testify-admin/pkg/models"
)

// truncateAt caps long free-text fields (user agent, referrer) on cards.
// Pass Options.Full to show them whole.
const truncateAt = 64

// Options tweak how cards are drawn.
type Options struct {
	Full bool // show untruncated user agent / referrer and testimonials inline
}

// Render writes the whole viewer surface for one state snapshot: an error
// banner when a fetch failed, an empty-state line when there is nothing to
// show, a loading notice while a fetch is in flight, then the event cards
// for whatever the state currently holds.
func Render(w io.Writer, st session.State, opts Options) {
	if st.Err != "" {
		fmt.Fprintf(w, "ERROR: %s\n", st.Err)
	} else if !st.Loading && len(st.Events) == 0 {
		fmt.Fprintln(w, "No events found.")
	}
	if st.Loading {
		fmt.Fprintln(w, "Fetching events...")
	}

	for _, e := range st.Events {
		RenderCard(w, e, opts)
	}
}

// RenderCard writes a single event card.
func RenderCard(w io.Writer, e models.Event, opts Options) {
	fmt.Fprintf(w, "── %s  %s\n", e.ID, e.DisplayTimestamp())
	fmt.Fprintf(w, "   site:      %s\n", e.Site)
	fmt.Fprintf(w, "   type:      %s\n", e.Type)
	fmt.Fprintf(w, "   path:      %s\n", e.Path)
	fmt.Fprintf(w, "   campaign:  %s\n", e.DisplayCampaign())
	fmt.Fprintf(w, "   contact:   %s / %s / %s\n",
		e.Contact.DisplayName(),
		e.Contact.DisplayEmail(),
		e.Contact.DisplayPhone(),
	)
	fmt.Fprintf(w, "   agent:     %s\n", clip(orDash(e.UserAgent), opts))
	fmt.Fprintf(w, "   referrer:  %s\n", clip(orDash(e.Ref), opts))

	if testimonial := e.DisplayTestimonial(); testimonial != "" {
		fmt.Fprintln(w, "   testimonial:")
		for _, line := range strings.Split(testimonial, "\n") {
			fmt.Fprintf(w, "     %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

func orDash(s string) string {
	if s == "" {
		return models.Missing
	}
	return s
}

func clip(s string, opts Options) string {
	if opts.Full {
		return s
	}
	runes := []rune(s)
	if len(runes) <= truncateAt {
		return s
	}
	return string(runes[:truncateAt]) + "…"
}
