package listing

import "github.com/x-xyz/swipebid/domain"

// Step tells the caller what a cursor move needs next
type Step int

const (
	// StepStay means the cursor moved inside the working list
	StepStay Step = iota
	// StepFetch means Page advanced and the caller must LoadPage it
	StepFetch
	// StepLoop means every page was visited and the cursor restarted on Seen
	StepLoop
	// StepEmpty means there is nothing to show
	StepEmpty
)

// Session is the explore cursor. It keeps token ids only and holds no I/O;
// callers fetch pages, feed them back through LoadPage and Refresh, and look
// the listing data up themselves.
type Session struct {
	Id       string `json:"id"`
	PageSize int    `json:"pageSize"`
	Page     int    `json:"page"`
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	// PageIds is the working list until the first traversal completes
	PageIds []domain.TokenId `json:"pageIds,omitempty"`
	// Seen lists every token id met on the first traversal in order, and is
	// the working list afterwards
	Seen               []domain.TokenId `json:"seen"`
	FirstCycleComplete bool             `json:"firstCycleComplete"`
}

func NewSession(id string, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Session{Id: id, PageSize: pageSize}
}

func (s *Session) TotalPages() int {
	if s.Total <= 0 {
		return 0
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

// Offset of the current page in the contract's active list
func (s *Session) Offset() int {
	return s.Page * s.PageSize
}

// HintOffset is the page offset where the current token most likely sits
func (s *Session) HintOffset() int {
	if !s.FirstCycleComplete {
		return s.Offset()
	}
	return s.Index / s.PageSize * s.PageSize
}

func (s *Session) working() []domain.TokenId {
	if s.FirstCycleComplete {
		return s.Seen
	}
	return s.PageIds
}

// Size of the working list
func (s *Session) Size() int {
	return len(s.working())
}

func (s *Session) Empty() bool {
	return s.Size() == 0
}

func (s *Session) Current() (domain.TokenId, bool) {
	ids := s.working()
	if s.Index < 0 || s.Index >= len(ids) {
		return "", false
	}
	return ids[s.Index], true
}

// Next moves to the following listing, asks for the next page while the first
// traversal is running, and loops over everything seen once it is done.
func (s *Session) Next() Step {
	if s.Empty() && len(s.Seen) == 0 {
		return StepEmpty
	}
	if s.Index+1 < s.Size() {
		s.Index++
		return StepStay
	}
	if !s.FirstCycleComplete && s.Page+1 < s.TotalPages() {
		s.Page++
		s.Index = 0
		return StepFetch
	}
	return s.wrap()
}

// Previous steps back inside the working list; false at the first item.
func (s *Session) Previous() bool {
	if s.Index <= 0 || s.Empty() {
		return false
	}
	s.Index--
	return true
}

// LoadPage installs the page requested by StepFetch, or the first page.
func (s *Session) LoadPage(items []RawListing, total int) Step {
	s.Total = total
	if len(items) == 0 {
		if len(s.Seen) == 0 {
			s.PageIds = nil
			s.Index = 0
			return StepEmpty
		}
		// the page vanished under us, nothing more to discover
		return s.wrap()
	}
	ids := TokenIds(items)
	s.Index = 0
	if !s.FirstCycleComplete {
		s.PageIds = ids
		s.remember(ids)
	}
	return StepStay
}

// Refresh swaps in refetched data and keeps the cursor on the same token id
// when it is still listed.
func (s *Session) Refresh(items []RawListing, total int) Step {
	cur, hasCur := s.Current()

	s.Total = total
	ids := TokenIds(items)
	if s.FirstCycleComplete {
		s.Seen = dedup(ids)
	} else {
		s.PageIds = ids
		s.remember(ids)
	}

	if s.Empty() {
		s.Index = 0
		if len(s.Seen) == 0 {
			return StepEmpty
		}
		return s.wrap()
	}

	if hasCur {
		for i, id := range s.working() {
			if id == cur {
				s.Index = i
				return StepStay
			}
		}
	}
	if s.Index >= s.Size() {
		s.Index = s.Size() - 1
	}
	return StepStay
}

func (s *Session) wrap() Step {
	s.FirstCycleComplete = true
	s.PageIds = nil
	s.Index = 0
	if s.Empty() {
		return StepEmpty
	}
	return StepLoop
}

// remember appends the ids not seen yet
func (s *Session) remember(ids []domain.TokenId) {
	known := make(map[domain.TokenId]bool, len(s.Seen))
	for _, id := range s.Seen {
		known[id] = true
	}
	for _, id := range ids {
		if known[id] {
			continue
		}
		known[id] = true
		s.Seen = append(s.Seen, id)
	}
}

func TokenIds(items []RawListing) []domain.TokenId {
	ids := make([]domain.TokenId, 0, len(items))
	for _, l := range items {
		ids = append(ids, l.Id())
	}
	return ids
}

func dedup(ids []domain.TokenId) []domain.TokenId {
	seen := make(map[domain.TokenId]bool, len(ids))
	res := make([]domain.TokenId, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		res = append(res, id)
	}
	return res
}
