// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/davetashner/surveydash/internal/survey"
)

// Output formats accepted by the report command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormat reports whether name is a supported output format.
func ValidFormat(name string) error {
	switch name {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be %s or %s)", name, FormatText, FormatJSON)
	}
}

// Meta describes where the report data came from.
type Meta struct {
	APIURL       string
	FallbackMode string
	Generated    time.Time
}

// ReportJSON is the top-level JSON structure for --format json output.
type ReportJSON struct {
	APIURL       string         `json:"api_url"`
	FallbackMode string         `json:"fallback_mode"`
	Generated    string         `json:"generated"`
	Resources    []ResourceJSON `json:"resources"`
	Sections     []SectionJSON  `json:"sections,omitempty"`
}

// ResourceJSON is the load outcome of a single resource.
type ResourceJSON struct {
	Resource     survey.Resource `json:"resource"`
	Status       string          `json:"status"` // "ok", "sample", "failed"
	Error        string          `json:"error,omitempty"`
	UsedFallback bool            `json:"used_fallback"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"` // "ok", "skipped"
	Reason       string `json:"reason,omitempty"`
	UsedFallback bool   `json:"used_fallback"`
	Data         any    `json:"data,omitempty"`
	Content      string `json:"content,omitempty"` // rendered text
}

// ResourceStatus summarizes the load state of each resource in in, in
// registry order.
func ResourceStatus(in *Input) []ResourceJSON {
	var out []ResourceJSON
	for _, r := range survey.All() {
		st, ok := in.States[r]
		if !ok {
			continue
		}
		rj := ResourceJSON{Resource: r, Error: st.Error, UsedFallback: st.UsedFallback}
		switch {
		case st.Error == "":
			rj.Status = "ok"
		case st.UsedFallback:
			rj.Status = "sample"
		default:
			rj.Status = "failed"
		}
		out = append(out, rj)
	}
	return out
}

// BuildJSON analyzes the requested sections and assembles the JSON report.
func BuildJSON(in *Input, meta Meta, sections []string) (*ReportJSON, error) {
	out := &ReportJSON{
		APIURL:       meta.APIURL,
		FallbackMode: meta.FallbackMode,
		Generated:    generated(meta).Format(time.RFC3339),
		Resources:    ResourceStatus(in),
	}

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sj := SectionJSON{
			Name:         sec.Name(),
			Description:  sec.Description(),
			UsedFallback: in.UsedFallback(sec.Resources()...),
		}

		if err := sec.Analyze(in); err != nil {
			if errors.Is(err, ErrDataNotAvailable) {
				sj.Status = "skipped"
				sj.Reason = err.Error()
				out.Sections = append(out.Sections, sj)
				continue
			}
			return nil, fmt.Errorf("section %s: %w", name, err)
		}

		sj.Status = "ok"
		sj.Data = sec.Data()
		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return nil, fmt.Errorf("section %s render: %w", name, err)
		}
		sj.Content = buf.String()
		out.Sections = append(out.Sections, sj)
	}
	return out, nil
}

// RenderJSON writes the report as machine-readable JSON.
func RenderJSON(in *Input, meta Meta, sections []string, w io.Writer) error {
	out, err := BuildJSON(in, meta, sections)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderText writes the report as terminal tables.
func RenderText(in *Input, meta Meta, sections []string, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Survey Analytics Report"))
	_, _ = fmt.Fprintf(w, "  Backend:   %s\n", meta.APIURL)
	_, _ = fmt.Fprintf(w, "  Generated: %s\n\n", generated(meta).Format(time.RFC3339))

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		if err := sec.Analyze(in); err != nil {
			if errors.Is(err, ErrDataNotAvailable) {
				_, _ = fmt.Fprintf(w, "%s\n  skipped: %v\n\n", SectionTitle(sec.Description()), err)
				continue
			}
			return fmt.Errorf("section %s: %w", name, err)
		}
		if in.UsedFallback(sec.Resources()...) {
			_, _ = fmt.Fprintf(w, "%s\n", FallbackBanner())
		}
		if err := sec.Render(w); err != nil {
			return fmt.Errorf("section %s render: %w", name, err)
		}
	}
	return nil
}

// ResolveSections determines which sections to run without printing warnings.
// If filter is empty, all registered sections are used.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}

func generated(meta Meta) time.Time {
	if meta.Generated.IsZero() {
		return time.Now()
	}
	return meta.Generated
}
