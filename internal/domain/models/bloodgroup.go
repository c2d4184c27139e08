// internal/domain/models/bloodgroup.go
package models

// BloodGroups is the closed set of blood group values accepted anywhere in
// the system. The empty string is not a group; it means "all donors" when
// used as an alert scope.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// ValidBloodGroup reports whether s is one of the eight blood group values.
func ValidBloodGroup(s string) bool {
	for _, g := range BloodGroups {
		if s == g {
			return true
		}
	}
	return false
}

// ValidAlertScope reports whether s is a valid alert group scope:
// empty (all donors) or one of the eight blood group values.
func ValidAlertScope(s string) bool {
	return s == "" || ValidBloodGroup(s)
}
