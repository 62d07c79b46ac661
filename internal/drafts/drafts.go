package drafts

import (
	"github.com/go-playground/validator/v10"
	"github.com/wanderreel/wanderreel/internal/domain"
)

// Draft types carry pre-validated, caller-supplied data into store creation
// operations. All field-level validation happens here, at the form boundary;
// the store only performs existence checks.

type VideoDraft struct {
	Title        string          `validate:"required"`
	VideoURL     string          `validate:"required,url"`
	Category     domain.Category `validate:"required,oneof=Beach Mountain City Religious Food 'Amusement Park' Forest Tropical Camping Other"`
	Description  string          `validate:"max=2200"`
	Place        string          `validate:"required"`
	Country      string          `validate:"required"`
	Source       domain.Source   `validate:"required,oneof=youtube direct instagram telegram url"`
	ThumbnailURL string          `validate:"omitempty,url"`
}

type ShopItemDraft struct {
	Name       string              `validate:"required"`
	ProductURL string              `validate:"required,url"`
	ImageURL   string              `validate:"omitempty,url"`
	Price      string              `validate:"required"`
	Category   domain.ShopCategory `validate:"required,oneof=Digital Physical"`
}

type ProfileDraft struct {
	Name     string `validate:"required,max=60"`
	Username string `validate:"required,min=3,max=30,excludesall=0x20"`
	Website  string `validate:"omitempty,url"`
	Bio      string `validate:"max=200"`
}

// Validator wraps go-playground/validator for the draft types above.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) VideoDraft(d VideoDraft) error {
	return v.validate.Struct(d)
}

func (v *Validator) ShopItemDraft(d ShopItemDraft) error {
	return v.validate.Struct(d)
}

func (v *Validator) ProfileDraft(d ProfileDraft) error {
	return v.validate.Struct(d)
}

// FieldErrors flattens a validation error into field -> failed rule, the shape
// form surfaces render as inline messages.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
