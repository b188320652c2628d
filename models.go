package userauth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the credential record. The email column carries a unique index;
// uniqueness is authoritative at the store.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	UserID        uuid.UUID  `bun:"id,pk,type:uuid" json:"id,omitempty"`
	UserEmail     string     `bun:"email,notnull,unique" json:"email,omitempty"`
	UserName      string     `bun:"user_name,notnull" json:"userName,omitempty"`
	UserRole      UserRole   `bun:"user_role,notnull" json:"role,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

var _ Identity = (*User)(nil)

// ID satisfies Identity.
func (u *User) ID() string { return u.UserID.String() }

// Username satisfies Identity.
func (u *User) Username() string { return u.UserName }

// Email satisfies Identity.
func (u *User) Email() string { return u.UserEmail }

// Role satisfies Identity.
func (u *User) Role() string { return u.UserRole }
