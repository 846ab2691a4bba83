package orgconfig

import "strings"

// Resolve maps an organization id to its configuration record.
//
// An empty id fails with OrgMissingError carrying the full set of known ids
// (empty when the mapping itself was never obtained, i.e. m is nil). A
// non-empty id absent from the mapping fails with OrgNotFoundError. On
// success the record is returned unmodified; resolution is never retried.
func Resolve(m Mapping, orgID string) (Organization, error) {
	if m == nil || strings.TrimSpace(orgID) == "" {
		return Organization{}, &OrgMissingError{Available: m.IDs()}
	}

	org, ok := m[orgID]
	if !ok {
		return Organization{}, &OrgNotFoundError{OrgID: orgID, Available: m.IDs()}
	}
	return org, nil
}
