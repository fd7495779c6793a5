package security

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glbook-dev/glbook/internal/model"
)

// Directory holds user credentials and each user's allowed-company list
// (hierarchical security). A single privilege tier exists: users with the
// Administrator flag may create users, everyone else may not.
type Directory struct {
	users  []model.User
	byName map[string]model.User
}

// NewDirectory creates a Directory from a slice of users.
func NewDirectory(users []model.User) *Directory {
	byName := make(map[string]model.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &Directory{users: users, byName: byName}
}

// Load reads users.csv from a book root and returns a Directory.
func Load(bookRoot string) (*Directory, error) {
	path := filepath.Join(bookRoot, "users.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening users: %w", err)
	}
	defer f.Close()

	users, err := ReadUsers(f)
	if err != nil {
		return nil, fmt.Errorf("reading users: %w", err)
	}
	return NewDirectory(users), nil
}

// CreateUser stores a new user. Only an administrator may call it; actor is
// the username of the caller. Allowed companies are stored as given, without
// checking them against the chart: pre-authorizing a company that does not
// exist yet is a provisioning convenience, validated lazily at post time.
func (d *Directory) CreateUser(actor, username, password string, companies []string) error {
	a, ok := d.byName[actor]
	if !ok || !a.Administrator {
		return fmt.Errorf("user %q may not manage users: %w", actor, model.ErrPermissionDenied)
	}
	if _, exists := d.byName[username]; exists {
		return fmt.Errorf("user %q: %w", username, model.ErrDuplicateUser)
	}

	u := model.User{Username: username, Password: password, Companies: companies}
	d.users = append(d.users, u)
	d.byName[username] = u
	return nil
}

// Authenticate returns the user if the password matches exactly.
func (d *Directory) Authenticate(username, password string) (model.User, error) {
	u, ok := d.byName[username]
	if !ok || u.Password != password {
		return model.User{}, fmt.Errorf("user %q: %w", username, model.ErrAuthentication)
	}
	return u, nil
}

// CompaniesFor returns the user's allowed-company list.
func (d *Directory) CompaniesFor(username string) ([]string, error) {
	u, ok := d.byName[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, model.ErrUnknownUser)
	}
	return u.Companies, nil
}

// IsAuthorized reports whether username may post against company.
func (d *Directory) IsAuthorized(username, company string) bool {
	u, ok := d.byName[username]
	return ok && u.AllowedCompany(company)
}

// All returns all users in insertion order.
func (d *Directory) All() []model.User {
	return d.users
}

// Save writes the directory to <bookRoot>/users.csv.
func (d *Directory) Save(bookRoot string) error {
	path := filepath.Join(bookRoot, "users.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating users file: %w", err)
	}
	defer f.Close()

	if err := WriteUsers(f, d.users); err != nil {
		return fmt.Errorf("writing users: %w", err)
	}
	return nil
}
