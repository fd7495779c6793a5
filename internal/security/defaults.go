package security

import "github.com/glbook-dev/glbook/internal/model"

// DefaultUsers returns the seed users for a new book: one administrator with
// access to both seed companies and one finance user scoped to MainCo.
func DefaultUsers() []model.User {
	return []model.User{
		{
			Username:      "admin",
			Password:      "admin",
			Companies:     []string{"01 - MainCo", "02 - Subsidiary"},
			Administrator: true,
		},
		{
			Username:  "finance_user",
			Password:  "fin",
			Companies: []string{"01 - MainCo"},
		},
	}
}
