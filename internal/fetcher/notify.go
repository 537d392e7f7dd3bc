// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package fetcher

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"

	"github.com/davetashner/surveydash/internal/survey"
)

// Notice tells the user that a load failed.
type Notice struct {
	Resource     survey.Resource
	Kind         string // transport, status, decode
	Err          string
	UsedFallback bool
}

// Text renders the notice as a single user-facing sentence.
func (n Notice) Text() string {
	if n.UsedFallback {
		return fmt.Sprintf("Failed to load %s: %s. Showing sample data instead.", n.Resource, n.Err)
	}
	return fmt.Sprintf("Failed to load %s: %s. No sample data is shown.", n.Resource, n.Err)
}

// Notifier receives notices. Implementations must return quickly; the
// fetcher calls Notify inline.
type Notifier interface {
	Notify(Notice)
}

// LogNotifier writes notices to the default slog logger at WARN.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(n Notice) {
	slog.Warn("fetch failed", "resource", n.Resource, "kind", n.Kind,
		"error", n.Err, "fallback", n.UsedFallback)
}

// WriterNotifier prints notices as highlighted lines, the terminal
// equivalent of a toast.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier returns a notifier printing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

var noticeColor = color.New(color.FgYellow, color.Bold)

// Notify implements Notifier.
func (wn *WriterNotifier) Notify(n Notice) {
	wn.mu.Lock()
	defer wn.mu.Unlock()
	_, _ = fmt.Fprintf(wn.w, "%s %s\n", noticeColor.Sprint("!"), n.Text())
}

// Recorder keeps every notice it receives. The dashboard attaches one per
// page request through Fetcher.Observe to build the page banner.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// multi fans a notice out to several notifiers.
type multi []Notifier

func (m multi) Notify(n Notice) {
	for _, nt := range m {
		nt.Notify(n)
	}
}

// Multi returns a notifier delivering to each non-nil notifier in order.
func Multi(ns ...Notifier) Notifier {
	var out multi
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
