package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Missing is the placeholder shown for optional fields the API left out.
const Missing = "-"

type EventListResponse struct {
	Events []Event `json:"events"`
}

// Event is one logged site interaction as returned by GET /api/fetch.
// Everything past the first five fields is optional; the API omits what it
// does not know.
type Event struct {
	ID          string          `json:"_id"`
	Timestamp   any             `json:"ts"` // epoch millis, or a string on older records
	Site        string          `json:"site"`
	Type        string          `json:"type"`
	Path        string          `json:"path"`
	CampaignID  string          `json:"campaignId,omitempty"`
	Contact     *ContactDetails `json:"contactDeets,omitempty"`
	UserAgent   string          `json:"userAgent,omitempty"`
	Ref         string          `json:"ref,omitempty"`
	Testimonial any             `json:"testimonial,omitempty"`
}

// ContactDetails carries whatever contact info a form submission included.
// Older records use "number" for the phone field, newer ones "phone".
type ContactDetails struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Number string `json:"number,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// DisplayName returns the contact name, or the placeholder dash. Safe on nil.
func (c *ContactDetails) DisplayName() string {
	if c == nil || c.Name == "" {
		return Missing
	}
	return c.Name
}

// DisplayEmail returns the contact email, or the placeholder dash. Safe on nil.
func (c *ContactDetails) DisplayEmail() string {
	if c == nil || c.Email == "" {
		return Missing
	}
	return c.Email
}

// DisplayPhone prefers the legacy "number" field over "phone". Safe on nil.
func (c *ContactDetails) DisplayPhone() string {
	if c == nil {
		return Missing
	}
	if c.Number != "" {
		return c.Number
	}
	if c.Phone != "" {
		return c.Phone
	}
	return Missing
}

// DisplayCampaign returns the campaign id, or the placeholder dash.
func (e Event) DisplayCampaign() string {
	if e.CampaignID == "" {
		return Missing
	}
	return e.CampaignID
}

const displayTimeFormat = "2006-01-02 15:04:05"

// DisplayTimestamp renders the event timestamp in local time. Anything that
// cannot be interpreted as a time is shown in its literal string form rather
// than failing the render.
func (e Event) DisplayTimestamp() string {
	switch ts := e.Timestamp.(type) {
	case nil:
		return Missing
	case float64:
		return time.UnixMilli(int64(ts)).Local().Format(displayTimeFormat)
	case int64:
		return time.UnixMilli(ts).Local().Format(displayTimeFormat)
	case int:
		return time.UnixMilli(int64(ts)).Local().Format(displayTimeFormat)
	case json.Number:
		if millis, err := ts.Int64(); err == nil {
			return time.UnixMilli(millis).Local().Format(displayTimeFormat)
		}
		return ts.String()
	case string:
		if millis, err := strconv.ParseInt(ts, 10, 64); err == nil {
			return time.UnixMilli(millis).Local().Format(displayTimeFormat)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t.Local().Format(displayTimeFormat)
		}
		return ts
	default:
		return fmt.Sprint(ts)
	}
}

// DisplayTestimonial renders a testimonial for the card body: strings pass
// through untouched, structured values are pretty-printed as JSON. Returns
// "" when the event has no testimonial.
func (e Event) DisplayTestimonial() string {
	switch v := e.Testimonial.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		pretty, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(pretty)
	}
}
