// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package fetcher

import (
	"encoding/json"
	"fmt"

	"github.com/davetashner/surveydash/internal/survey"
)

// State is the load state of one resource as seen by one consumer.
//
// A load starts Pending (Loading=true, Data=nil) and resolves exactly once,
// either to success (Data set, Error empty, UsedFallback=false) or to
// failure (Error set; in demo mode Data holds the sample document and
// UsedFallback=true).
type State[T any] struct {
	Resource     survey.Resource
	Data         *T
	Loading      bool
	Error        string
	UsedFallback bool

	// Seq is the consumer sequence number of the load that produced this
	// state. Zero for states produced outside a Consumer.
	Seq uint64
}

// Pending returns the initial state of a load.
func Pending[T any](r survey.Resource) State[T] {
	return State[T]{Resource: r, Loading: true}
}

// Failed reports whether the load ended in an error.
func (s State[T]) Failed() bool {
	return !s.Loading && s.Error != ""
}

// HasData reports whether the state carries a document.
func (s State[T]) HasData() bool {
	return s.Data != nil
}

// stateJSON is the wire form: error is null when the load succeeded.
type stateJSON[T any] struct {
	Resource     survey.Resource `json:"resource"`
	Data         *T              `json:"data"`
	Loading      bool            `json:"loading"`
	Error        *string         `json:"error"`
	UsedFallback bool            `json:"usedFallback"`
}

// MarshalJSON implements json.Marshaler.
func (s State[T]) MarshalJSON() ([]byte, error) {
	out := stateJSON[T]{
		Resource:     s.Resource,
		Data:         s.Data,
		Loading:      s.Loading,
		UsedFallback: s.UsedFallback,
	}
	if s.Error != "" {
		msg := s.Error
		out.Error = &msg
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *State[T]) UnmarshalJSON(b []byte) error {
	var in stateJSON[T]
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*s = State[T]{
		Resource:     in.Resource,
		Data:         in.Data,
		Loading:      in.Loading,
		UsedFallback: in.UsedFallback,
	}
	if in.Error != nil {
		s.Error = *in.Error
	}
	return nil
}

// As converts a raw state into a typed one. A document that does not fit T
// leaves Data nil and records the decode problem in Error.
func As[T any](s State[json.RawMessage]) State[T] {
	out := State[T]{
		Resource:     s.Resource,
		Loading:      s.Loading,
		Error:        s.Error,
		UsedFallback: s.UsedFallback,
		Seq:          s.Seq,
	}
	if s.Data == nil {
		return out
	}
	var v T
	if err := json.Unmarshal(*s.Data, &v); err != nil {
		msg := fmt.Sprintf("decoding %s: %v", s.Resource, err)
		if out.Error == "" {
			out.Error = msg
		} else {
			out.Error += "; " + msg
		}
		return out
	}
	out.Data = &v
	return out
}
