package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/sunjoo-dev/movein-registry/models"
)

const (
	FieldName       = "name"
	FieldRRN        = "rrn"
	FieldEmail      = "email"
	FieldBeforeAddr = "before_addr"
	FieldAfterAddr  = "after_addr"
)

// rrnPattern matches a resident registration number: six birth-date digits,
// an optional hyphen, then seven digits.
var rrnPattern = regexp.MustCompile(`^\d{6}-?\d{7}$`)

// NoticeValidator validates relocation notices and partial notice updates
// before they reach encryption and storage.
type NoticeValidator struct {
}

func NewNoticeValidator() Validator {
	return &NoticeValidator{}
}

func (v *NoticeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MoveIn:
		return v.validateNotice(ctx, value, fields...)
	case *models.MoveIn:
		return v.validateNotice(ctx, *value, fields...)

	case models.MoveInUpdate:
		return v.validateNoticeUpdate(ctx, value, fields...)
	case *models.MoveInUpdate:
		return v.validateNoticeUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidRRN(rrn string) bool {
	return rrnPattern.MatchString(rrn)
}

// isValidEmail accepts the broad local@domain shape; exact deliverability is
// not this layer's concern.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (v *NoticeValidator) validateNotice(ctx context.Context, notice models.MoveIn, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldRRN, FieldEmail, FieldBeforeAddr, FieldAfterAddr}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(notice.Name) == "" {
				return ErrEmptyName
			}
		case FieldRRN:
			if !isValidRRN(notice.RRN) {
				return ErrInvalidRRN
			}
		case FieldEmail:
			if notice.Email != "" && !isValidEmail(notice.Email) {
				return ErrInvalidEmail
			}
		case FieldBeforeAddr:
			if strings.TrimSpace(notice.BeforeAddr) == "" {
				return ErrEmptyBeforeAddr
			}
		case FieldAfterAddr:
			if strings.TrimSpace(notice.AfterAddr) == "" {
				return ErrEmptyAfterAddr
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoticeValidator) validateNoticeUpdate(ctx context.Context, update models.MoveInUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldRRN, FieldEmail, FieldBeforeAddr, FieldAfterAddr}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyName
			}
		case FieldRRN:
			if update.RRN != nil && !isValidRRN(*update.RRN) {
				return ErrInvalidRRN
			}
		case FieldEmail:
			if update.Email != nil && *update.Email != "" && !isValidEmail(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldBeforeAddr:
			if update.BeforeAddr != nil && strings.TrimSpace(*update.BeforeAddr) == "" {
				return ErrEmptyBeforeAddr
			}
		case FieldAfterAddr:
			if update.AfterAddr != nil && strings.TrimSpace(*update.AfterAddr) == "" {
				return ErrEmptyAfterAddr
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
