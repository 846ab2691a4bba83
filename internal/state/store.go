package state

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Store reads and writes completion records through a KV backend.
//
// Persistence is best effort: a failed or corrupt read degrades to "no
// prior state" and a failed write to a logged no-op. Session correctness
// never depends on the store succeeding.
type Store struct {
	kv KV

	// Now supplies the wall clock; tests pin it.
	Now func() time.Time
}

// NewStore wraps a KV backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, Now: time.Now}
}

// Load returns the completion record for a key, normalized to the current
// shape. Absent, corrupt and unreadable values all yield a zero record.
// Legacy values are normalized in the returned value only; the persisted
// text is left untouched until the next Save.
func (s *Store) Load(ctx context.Context, key string) Record {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Printf("[state] read failed for %s, treating as no history: %v", key, err)
		return Record{}
	}
	if !ok {
		return Record{}
	}

	rec, variant := Decode([]byte(raw))
	if variant == VariantCorrupt {
		log.Printf("[state] corrupt record for %s, treating as no history", key)
		return Record{}
	}
	return rec
}

// Save marks a step and rewrites the full record in the current shape.
//
// Completion is monotone: marking a step completed stamps it with now
// (never moving an existing timestamp backward), while marking it not
// completed leaves the existing timestamp untouched. Any legacy fields
// disappear on this rewrite and are never written again.
func (s *Store) Save(ctx context.Context, key, step string, completed bool) {
	rec := s.Load(ctx, key)

	st := rec.Step(step)
	if st == nil {
		log.Printf("[state] unknown step %q for %s, ignoring", step, key)
		return
	}

	st.Completed = completed
	if completed {
		now := s.Now().UnixMilli()
		if st.Timestamp == nil || *st.Timestamp < now {
			st.Timestamp = &now
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[state] failed to encode record for %s: %v", key, err)
		return
	}
	if err := s.kv.Put(ctx, key, string(data)); err != nil {
		log.Printf("[state] write failed for %s: %v", key, err)
	}
}
