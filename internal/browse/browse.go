// Package browse holds the client-side view state over a fetched result set:
// state filter, created_at range and fixed-size pages.
package browse

import (
	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

// PageSize is the number of pull requests shown per page.
const PageSize = 10

// StateFilter narrows the collection by pull request state.
type StateFilter string

const (
	FilterAll    StateFilter = "all"
	FilterOpen   StateFilter = "open"
	FilterClosed StateFilter = "closed"
)

// NoResultsMessage is shown when the filtered collection is empty.
const NoResultsMessage = "No pull requests found for the given criteria."

// State is the complete view state. Values are never mutated by Reduce.
type State struct {
	All         []domain.FormattedPullRequest
	StateFilter StateFilter
	// From and To are YYYY-MM-DD; the range applies only when both are set.
	From string
	To   string
	Page int
}

// NewState returns the state before anything is loaded.
func NewState() State {
	return State{StateFilter: FilterAll, Page: 1}
}

// Action is a user or network event applied by Reduce.
type Action interface {
	apply(State) State
}

// Loaded replaces the collection wholesale and resets filters and page.
type Loaded struct {
	PRs []domain.FormattedPullRequest
}

// SetStateFilter selects all, open or closed pull requests.
type SetStateFilter struct {
	Filter StateFilter
}

// SetDateFilter narrows by created_at date, inclusive on both ends.
type SetDateFilter struct {
	From string
	To   string
}

// GoToPage jumps to Page, clamped to the available pages.
type GoToPage struct {
	Page int
}

type NextPage struct{}

type PrevPage struct{}

func (a Loaded) apply(s State) State {
	next := NewState()
	next.All = append([]domain.FormattedPullRequest(nil), a.PRs...)
	return next
}

func (a SetStateFilter) apply(s State) State {
	switch a.Filter {
	case FilterAll, FilterOpen, FilterClosed:
		s.StateFilter = a.Filter
	default:
		s.StateFilter = FilterAll
	}
	s.Page = 1
	return s
}

func (a SetDateFilter) apply(s State) State {
	s.From = a.From
	s.To = a.To
	s.Page = 1
	return s
}

func (a GoToPage) apply(s State) State {
	s.Page = clamp(a.Page, totalPages(len(filtered(s))))
	return s
}

func (NextPage) apply(s State) State {
	return GoToPage{Page: s.Page + 1}.apply(s)
}

func (PrevPage) apply(s State) State {
	return GoToPage{Page: s.Page - 1}.apply(s)
}

// Reduce returns the state after action. s is left untouched.
func Reduce(s State, action Action) State {
	if action == nil {
		return s
	}
	return action.apply(s)
}

// PageView is what one render of the list shows.
type PageView struct {
	Items      []domain.FormattedPullRequest
	Page       int
	TotalPages int
	Total      int
	Empty      bool
}

// ShowPagination reports whether page controls are needed.
func (v PageView) ShowPagination() bool {
	return v.TotalPages > 1
}

// View projects s to the items of its current page.
func View(s State) PageView {
	items := filtered(s)
	pages := totalPages(len(items))
	page := clamp(s.Page, pages)

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))

	return PageView{
		Items:      items[start:end],
		Page:       page,
		TotalPages: pages,
		Total:      len(items),
		Empty:      len(items) == 0,
	}
}

func filtered(s State) []domain.FormattedPullRequest {
	out := make([]domain.FormattedPullRequest, 0, len(s.All))
	dateFilter := s.From != "" && s.To != ""
	for _, pr := range s.All {
		if s.StateFilter == FilterOpen && pr.State != domain.StateOpen {
			continue
		}
		if s.StateFilter == FilterClosed && pr.State != domain.StateClosed {
			continue
		}
		// YYYY-MM-DD strings order lexically.
		if dateFilter && (pr.CreatedAt < s.From || pr.CreatedAt > s.To) {
			continue
		}
		out = append(out, pr)
	}
	return out
}

func totalPages(n int) int {
	if n == 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

func clamp(page, pages int) int {
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return page
}
