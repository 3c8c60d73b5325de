package builder

import (
	"time"

	"github.com/noah-isme/reportcard/internal/models"
)

// UserBuilder stages the root record.
type UserBuilder struct {
	user  *models.User
	built bool
}

// NewUserBuilder starts a record created now.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{user: &models.User{CreationDate: time.Now().UTC()}}
}

// SetName sets the owner's name.
func (b *UserBuilder) SetName(name string) *UserBuilder {
	if !b.built {
		b.user.Name = name
	}
	return b
}

// SetCreationDate overrides the creation timestamp, stored in UTC.
func (b *UserBuilder) SetCreationDate(created time.Time) *UserBuilder {
	if !b.built {
		b.user.CreationDate = created.UTC()
	}
	return b
}

// SetTerms replaces the term list with copies of terms, keeping their order.
func (b *UserBuilder) SetTerms(terms []*models.Term) error {
	if b.built {
		return consumed("user")
	}
	if len(terms) == 0 {
		return required("terms")
	}
	copies := make([]*models.Term, 0, len(terms))
	for _, t := range terms {
		if t == nil {
			return required("term")
		}
		copies = append(copies, t.Clone())
	}
	b.user.Terms = copies
	return nil
}

// AddTerm appends a copy of term.
func (b *UserBuilder) AddTerm(term *models.Term) error {
	if b.built {
		return consumed("user")
	}
	if term == nil {
		return required("term")
	}
	if b.user.Terms == nil {
		b.user.Terms = make([]*models.Term, 0, 4)
	}
	b.user.Terms = append(b.user.Terms, term.Clone())
	return nil
}

// Build points every term at the record.
func (b *UserBuilder) Build() (*models.User, error) {
	if b.built {
		return nil, consumed("user")
	}
	for _, t := range b.user.Terms {
		t.User = b.user
	}
	if err := validateEntity("user", b.user); err != nil {
		return nil, err
	}
	b.built = true
	return b.user, nil
}
