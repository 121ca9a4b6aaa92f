package domain

import "github.com/samber/lo"

// Roster is the result of replaying the guest log: the latest record per
// identity key, kept in the order each key was first seen, plus a lookup
// from every own handle ever recorded to its chat.
type Roster struct {
	order   []int64
	latest  map[int64]GuestRecord
	handles map[string]int64
}

func NewRoster() *Roster {
	return &Roster{
		latest:  make(map[int64]GuestRecord),
		handles: make(map[string]int64),
	}
}

// Add folds one record into the roster. A record replaces the current one
// for its key unless its timestamp is strictly older; equal timestamps
// resolve to the later record in log order.
func (r *Roster) Add(rec GuestRecord) {
	key := rec.Key()
	cur, ok := r.latest[key]
	if !ok {
		r.order = append(r.order, key)
	}
	if !ok || !rec.Timestamp.Before(cur.Timestamp) {
		r.latest[key] = rec
	}
	// Last write wins, from any record that carries a handle.
	if h := CanonicalHandle(rec.Username); h != "" {
		r.handles[h] = rec.ChatID
	}
}

// Latest returns the current record for a key.
func (r *Roster) Latest(key int64) (GuestRecord, bool) {
	rec, ok := r.latest[key]
	return rec, ok
}

// Records returns the latest record of every key in first-seen order.
func (r *Roster) Records() []GuestRecord {
	return lo.Map(r.order, func(key int64, _ int) GuestRecord {
		return r.latest[key]
	})
}

// Active returns the latest records whose status is not Deleted.
func (r *Roster) Active() []GuestRecord {
	return lo.Filter(r.Records(), func(rec GuestRecord, _ int) bool {
		return rec.IsActive()
	})
}

// ChatForHandle resolves an own handle (any case, optional @) to a chat id.
func (r *Roster) ChatForHandle(handle string) (int64, bool) {
	h := CanonicalHandle(handle)
	if h == "" {
		return 0, false
	}
	chatID, ok := r.handles[h]
	return chatID, ok
}

// Len returns the number of distinct identities seen.
func (r *Roster) Len() int {
	return len(r.order)
}
