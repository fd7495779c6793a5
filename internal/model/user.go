package model

// User represents a row in users.csv. Companies is the hierarchical-security
// list: the companies this user may post against, in insertion order. A
// company in the list need not exist in the chart yet; pre-provisioning is
// allowed and existence is checked at post time.
type User struct {
	Username      string
	Password      string
	Companies     []string
	Administrator bool // may create users
}

// AllowedCompany reports whether company is in the user's allowed set.
func (u User) AllowedCompany(company string) bool {
	for _, c := range u.Companies {
		if c == company {
			return true
		}
	}
	return false
}
