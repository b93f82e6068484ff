package domain

import (
	"bytes"
	"encoding/json"
)

// FieldName identifies one of the structured fields extracted from an FNOL
// document. The value is the field's display name, used both as the JSON key
// in the output record and in missing-field lists. The set is fixed at
// design time.
type FieldName string

const (
	FieldPolicyNumber        FieldName = "Policy Number"
	FieldPolicyholderName    FieldName = "Policyholder Name"
	FieldIncidentDate        FieldName = "Incident Date"
	FieldIncidentTime        FieldName = "Incident Time"
	FieldIncidentLocation    FieldName = "Incident Location"
	FieldIncidentDescription FieldName = "Incident Description"
	FieldClaimType           FieldName = "Claim Type"
	FieldEstimatedDamage     FieldName = "Estimated Damage"
	FieldAttachments         FieldName = "Attachments"
	FieldInitialEstimate     FieldName = "Initial Estimate"
)

// AllFields returns every extractable field in canonical form order.
func AllFields() []FieldName {
	return []FieldName{
		FieldPolicyNumber,
		FieldPolicyholderName,
		FieldIncidentDate,
		FieldIncidentTime,
		FieldIncidentLocation,
		FieldIncidentDescription,
		FieldClaimType,
		FieldEstimatedDamage,
		FieldAttachments,
		FieldInitialEstimate,
	}
}

// MandatoryFields returns the fields whose absence forces a Manual Review
// routing outcome, in the order they are reported when missing.
func MandatoryFields() []FieldName {
	return []FieldName{
		FieldPolicyNumber,
		FieldPolicyholderName,
		FieldIncidentDate,
		FieldIncidentLocation,
		FieldClaimType,
		FieldEstimatedDamage,
	}
}

// ExtractionResult maps every FieldName to its validated value. All ten
// keys are always present; an absent value means the field was not found
// or was rejected by validation. A present value is never empty and never
// a recognised missing-token.
type ExtractionResult struct {
	values map[FieldName]string
}

// NewExtractionResult returns a result with every field absent.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{values: make(map[FieldName]string, len(AllFields()))}
}

// Set records a present value for a field. Empty values are ignored.
func (r *ExtractionResult) Set(field FieldName, value string) {
	if value == "" {
		return
	}
	r.values[field] = value
}

// Clear marks a field as absent.
func (r *ExtractionResult) Clear(field FieldName) {
	delete(r.values, field)
}

// Get returns the field's value and whether it is present.
func (r *ExtractionResult) Get(field FieldName) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// MarshalJSON serialises the result as an object with all ten fields in
// canonical form order, absent fields rendered as null.
func (r *ExtractionResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range AllFields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(field))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if v, ok := r.values[field]; ok {
			val, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
