package model

import "github.com/jackc/pgx/v5/pgtype"

// UserProfile exists for an identity once nickname setup has completed.
// Its absence is the signal that the nickname gate must trigger.
type UserProfile struct {
	UID       string             `json:"uid"`
	Nickname  string             `json:"nickname"`
	Email     string             `json:"email"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at,omitempty"`
}
