package urlsync

import (
	"fmt"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// EncodeViewState converts a view state into query parameters.
// Default values (inbox view, manual sort, empty filters) are omitted.
func EncodeViewState(state domain.ViewState) QueryParams {
	f := state.Filter
	var p QueryParams
	if f.Query != "" {
		p.Q = ptr(f.Query)
	}
	if len(f.Tags) > 0 {
		p.Tags = ptr(strings.Join(f.Tags, ","))
	}
	if f.Priority != "" {
		p.Priority = ptr(string(f.Priority))
	}
	if f.Status != domain.StatusAny {
		p.Status = ptr(string(f.Status))
	}
	if state.View != "" && state.View != domain.ViewInbox {
		p.View = ptr(string(state.View))
	}
	if state.Sort != "" && state.Sort != domain.SortManual {
		p.Sort = ptr(string(state.Sort))
	}
	if f.Due != nil {
		p.Due = ptr(f.Due.Format())
	}
	return p
}

// DecodeQueryParams converts query parameters into a view state.
// Invalid enum values and malformed due filters fall back to their defaults;
// empty tag segments are dropped.
func DecodeQueryParams(p QueryParams) domain.ViewState {
	var filter domain.FilterState
	if p.Q != nil {
		filter.Query = *p.Q
	}
	if p.Tags != nil {
		for _, tag := range strings.Split(*p.Tags, ",") {
			if tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}
	if p.Priority != nil {
		if pr := domain.Priority(*p.Priority); pr.IsValid() {
			filter.Priority = pr
		}
	}
	if p.Status != nil {
		if st := domain.StatusFilter(*p.Status); st.IsValid() {
			filter.Status = st
		}
	}
	if p.Due != nil {
		filter.Due = domain.ParseDueFilter(*p.Due)
	}

	state := domain.ViewState{Filter: filter}
	if p.View != nil {
		if v := domain.ViewType(*p.View); v.IsValid() {
			state.View = v
		}
	}
	if p.Sort != nil {
		if s := domain.SortType(*p.Sort); s.IsValid() {
			state.Sort = s
		}
	}
	return domain.NewViewState(state)
}

// EncodeToRecord converts a view state into a record of non-empty parameters.
func EncodeToRecord(state domain.ViewState) map[string]string {
	return ToRecord(EncodeViewState(state))
}

// DecodeFromRecord converts a record into a view state.
func DecodeFromRecord(record map[string]string) domain.ViewState {
	return DecodeQueryParams(ParseFromRecord(record))
}

// EncodeQuery converts a view state into a URL query string.
func EncodeQuery(state domain.ViewState) string {
	return EncodeViewState(state).String()
}

// DecodeQuery converts a URL query string into a view state.
func DecodeQuery(raw string) (domain.ViewState, error) {
	p, err := ParseQuery(raw)
	if err != nil {
		return domain.ViewState{}, fmt.Errorf("parse view query: %w", err)
	}
	return DecodeQueryParams(p), nil
}

// Overlay applies a query string on top of base. The filter is taken from
// the query as a whole; view and sort keep the base values unless the query
// names a valid one.
func Overlay(base domain.ViewState, raw string) (domain.ViewState, error) {
	p, err := ParseQuery(raw)
	if err != nil {
		return base, fmt.Errorf("parse view query: %w", err)
	}
	decoded := DecodeQueryParams(p)
	out := domain.ViewState{
		Filter: decoded.Filter,
		View:   base.View,
		Sort:   base.Sort,
	}
	if p.View != nil && domain.ViewType(*p.View).IsValid() {
		out.View = decoded.View
	}
	if p.Sort != nil && domain.SortType(*p.Sort).IsValid() {
		out.Sort = decoded.Sort
	}
	return domain.NewViewState(out), nil
}

func ptr[T any](v T) *T {
	return &v
}
