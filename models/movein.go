package models

import "time"

// MoveIn is a residential relocation notice submitted by a citizen and
// approved by an administrator.
//
// The RRN field (resident registration number) is the record's protected
// identifier: it is encrypted before persistence and decrypted only for an
// authorized single-record read. In list responses the field carries the
// stored ciphertext as-is.
type MoveIn struct {
	// ID is the internal unique identifier of the notice.
	ID int64 `json:"id"`

	// Name is the full name of the relocating person.
	Name string `json:"name"`

	// RRN is the resident registration number. Depending on the flow it holds
	// either the transient plaintext (inbound create/update, outbound detail
	// read) or the cipher token stored at rest.
	RRN string `json:"rrn"`

	// Email is the contact address of the relocating person.
	Email string `json:"email"`

	// BeforeAddr is the address moved out of.
	BeforeAddr string `json:"before_addr"`

	// AfterAddr is the address moved into.
	AfterAddr string `json:"after_addr"`

	// RegisteredAt is the server-side registration timestamp. Values supplied
	// by the caller are ignored.
	RegisteredAt time.Time `json:"reg_dt"`

	// ApprovedAt is the approval timestamp, nil until the notice is approved.
	ApprovedAt *time.Time `json:"approval_dt,omitempty"`

	// MoveInAt is the declared relocation date.
	MoveInAt *time.Time `json:"move_in_dt,omitempty"`

	// IsApproval reports whether an administrator approved the notice.
	IsApproval bool `json:"is_approval"`

	// UserID references the account that submitted the notice.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the MoveIn model.
func (m MoveIn) TableName() string {
	return "movein_info"
}

// MoveInUpdate carries a partial update of a relocation notice. Nil fields are
// left untouched. A non-nil RRN is re-encrypted before being applied.
type MoveInUpdate struct {
	Name       *string    `json:"name,omitempty"`
	RRN        *string    `json:"rrn,omitempty"`
	Email      *string    `json:"email,omitempty"`
	BeforeAddr *string    `json:"before_addr,omitempty"`
	AfterAddr  *string    `json:"after_addr,omitempty"`
	MoveInAt   *time.Time `json:"move_in_dt,omitempty"`
}

// IsEmpty reports whether the update contains no fields to apply.
func (u MoveInUpdate) IsEmpty() bool {
	return u.Name == nil && u.RRN == nil && u.Email == nil &&
		u.BeforeAddr == nil && u.AfterAddr == nil && u.MoveInAt == nil
}
