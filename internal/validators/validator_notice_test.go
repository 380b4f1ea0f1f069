package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunjoo-dev/movein-registry/models"
)

func validNotice() models.MoveIn {
	return models.MoveIn{
		Name:       "Kim Minsu",
		RRN:        "900101-1234567",
		Email:      "minsu@example.com",
		BeforeAddr: "Seoul, Mapo-gu",
		AfterAddr:  "Busan, Haeundae-gu",
	}
}

func TestValidateNotice(t *testing.T) {
	v := NewNoticeValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(n *models.MoveIn)
		wantErr error
	}{
		{name: "valid notice", mutate: func(n *models.MoveIn) {}},
		{name: "rrn without hyphen", mutate: func(n *models.MoveIn) { n.RRN = "9001011234567" }},
		{name: "email optional", mutate: func(n *models.MoveIn) { n.Email = "" }},
		{name: "empty name", mutate: func(n *models.MoveIn) { n.Name = "   " }, wantErr: ErrEmptyName},
		{name: "short rrn", mutate: func(n *models.MoveIn) { n.RRN = "900101-12345" }, wantErr: ErrInvalidRRN},
		{name: "rrn with letters", mutate: func(n *models.MoveIn) { n.RRN = "900101-abcdefg" }, wantErr: ErrInvalidRRN},
		{name: "empty rrn", mutate: func(n *models.MoveIn) { n.RRN = "" }, wantErr: ErrInvalidRRN},
		{name: "malformed email", mutate: func(n *models.MoveIn) { n.Email = "minsu" }, wantErr: ErrInvalidEmail},
		{name: "empty before address", mutate: func(n *models.MoveIn) { n.BeforeAddr = "" }, wantErr: ErrEmptyBeforeAddr},
		{name: "empty after address", mutate: func(n *models.MoveIn) { n.AfterAddr = "" }, wantErr: ErrEmptyAfterAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice := validNotice()
			tt.mutate(&notice)

			err := v.Validate(ctx, notice)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNotice_FieldScoping(t *testing.T) {
	v := NewNoticeValidator()
	ctx := context.Background()

	notice := validNotice()
	notice.RRN = "broken"

	assert.NoError(t, v.Validate(ctx, notice, FieldName, FieldEmail))
	assert.ErrorIs(t, v.Validate(ctx, notice, FieldRRN), ErrInvalidRRN)
	assert.ErrorIs(t, v.Validate(ctx, notice, "no_such_field"), ErrUnknownField)
}

func TestValidateNoticeUpdate(t *testing.T) {
	v := NewNoticeValidator()
	ctx := context.Background()

	name := "Lee Jiwoo"
	badRRN := "12-34"
	goodRRN := "950505-7654321"
	emptyAddr := " "

	tests := []struct {
		name    string
		update  models.MoveInUpdate
		wantErr error
	}{
		{name: "empty update", update: models.MoveInUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "name only", update: models.MoveInUpdate{Name: &name}},
		{name: "valid rrn", update: models.MoveInUpdate{RRN: &goodRRN}},
		{name: "invalid rrn", update: models.MoveInUpdate{RRN: &badRRN}, wantErr: ErrInvalidRRN},
		{name: "blank address", update: models.MoveInUpdate{AfterAddr: &emptyAddr}, wantErr: ErrEmptyAfterAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewNoticeValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
