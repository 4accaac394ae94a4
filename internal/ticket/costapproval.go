// Package ticket provides the ticket-update domain models the back office
// shares with the schedule wizard, most notably the cost-approval request
// list with its origin-tag invariant.
package ticket

// Origin tags where a cost-approval entry came from. Only locally authored
// entries are ever re-submitted; entries that arrived from the backend must
// never be posted back, or they would be duplicated server-side.
type Origin string

// Origin constants.
const (
	// OriginPersisted marks an entry that already exists on the backend.
	OriginPersisted Origin = "persisted"

	// OriginLocal marks an entry authored in this session and not yet saved.
	OriginLocal Origin = "local"
)

// CostApprovalEntry is one line of a cost-approval request.
type CostApprovalEntry struct {
	// ID is the backend id for persisted entries, empty for local ones.
	ID string `json:"id,omitempty"`

	// Amount is the requested cost, kept as entered.
	Amount string `json:"amount"`

	// Comment is the operator's justification.
	Comment string `json:"comment"`

	// Origin tags where the entry came from. It is never serialized; the
	// backend must not see it.
	Origin Origin `json:"-"`
}

// CostApprovalRequest is an ordered list of cost-approval entries mixing
// backend-loaded and locally authored lines.
type CostApprovalRequest struct {
	entries []CostApprovalEntry
}

// LoadPersisted seeds the request with entries fetched from the backend.
// Existing local entries are preserved and keep their position after the
// persisted block.
func (r *CostApprovalRequest) LoadPersisted(entries []CostApprovalEntry) {
	local := r.Pending()
	r.entries = r.entries[:0]
	for _, e := range entries {
		e.Origin = OriginPersisted
		r.entries = append(r.entries, e)
	}
	r.entries = append(r.entries, local...)
}

// Add appends a locally authored entry.
func (r *CostApprovalRequest) Add(amount, comment string) {
	r.entries = append(r.entries, CostApprovalEntry{
		Amount:  amount,
		Comment: comment,
		Origin:  OriginLocal,
	})
}

// Entries returns a copy of all entries in display order.
func (r *CostApprovalRequest) Entries() []CostApprovalEntry {
	return append([]CostApprovalEntry(nil), r.entries...)
}

// Pending returns only the locally authored entries, the ones eligible for
// submission.
func (r *CostApprovalRequest) Pending() []CostApprovalEntry {
	var local []CostApprovalEntry
	for _, e := range r.entries {
		if e.Origin == OriginLocal {
			local = append(local, e)
		}
	}
	return local
}

// MarkSubmitted flips every local entry to persisted after a successful
// submission, so a retry of the surrounding action cannot double-post.
func (r *CostApprovalRequest) MarkSubmitted() {
	for i := range r.entries {
		if r.entries[i].Origin == OriginLocal {
			r.entries[i].Origin = OriginPersisted
		}
	}
}
