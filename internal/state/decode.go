package state

import (
	"bytes"
	"encoding/json"
)

// Variant classifies a raw persisted value at the store boundary. Every
// downstream consumer only ever sees the current shape; legacy values are
// normalized immediately after decoding.
type Variant int

const (
	// VariantAbsent means no value is persisted under the key.
	VariantAbsent Variant = iota
	// VariantCurrent is the per-step object shape.
	VariantCurrent
	// VariantLegacy is the earlier shape: bare booleans per step with
	// sibling top-level step1Timestamp/step2Timestamp fields.
	VariantLegacy
	// VariantCorrupt is unparseable or structurally wrong data; treated
	// the same as absent.
	VariantCorrupt
)

// rawRecord matches both persisted shapes at once. Step fields stay raw so
// a bool (legacy) and an object (current) can be told apart.
type rawRecord struct {
	Step1          json.RawMessage `json:"step1"`
	Step2          json.RawMessage `json:"step2"`
	Step1Timestamp *int64          `json:"step1Timestamp"`
	Step2Timestamp *int64          `json:"step2Timestamp"`
	Timestamp      *int64          `json:"timestamp"`
}

// Decode classifies raw persisted text and normalizes it into the current
// record shape. Corrupt input yields a zero record; it never fails.
func Decode(raw []byte) (Record, Variant) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Record{}, VariantAbsent
	}

	var rr rawRecord
	if err := json.Unmarshal(raw, &rr); err != nil {
		return Record{}, VariantCorrupt
	}

	step1, legacy1, ok1 := decodeStep(rr.Step1, rr.Step1Timestamp)
	step2, legacy2, ok2 := decodeStep(rr.Step2, rr.Step2Timestamp)
	if !ok1 || !ok2 {
		return Record{}, VariantCorrupt
	}

	variant := VariantCurrent
	if legacy1 || legacy2 || rr.Step1Timestamp != nil || rr.Step2Timestamp != nil || rr.Timestamp != nil {
		variant = VariantLegacy
	}
	return Record{Step1: step1, Step2: step2}, variant
}

// decodeStep decodes a single step value, which may be absent, a legacy
// bare boolean, or a current object.
func decodeStep(raw json.RawMessage, legacyTimestamp *int64) (StepState, bool, bool) {
	if len(raw) == 0 {
		return StepState{}, false, true
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		st := StepState{Completed: b}
		if b && legacyTimestamp != nil {
			ts := *legacyTimestamp
			st.Timestamp = &ts
		}
		return st, true, true
	}

	var st StepState
	if err := json.Unmarshal(raw, &st); err == nil {
		return st, false, true
	}
	return StepState{}, false, false
}
