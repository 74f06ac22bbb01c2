package validation

import (
	"fmt"
	"strings"

	"github.com/blogfolio-api/internal/models"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator provides validation methods for request payloads. Tag-level
// rules run through go-playground/validator; domain enums (category, status,
// media type) are checked against the model sets on top.
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateBlog validates a native article payload
func (v *Validator) ValidateBlog(in *models.BlogInput) []ValidationError {
	errors := v.structErrors(in)

	if in.Category != "" && !models.ValidCategories[in.Category] {
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: "invalid category",
			Value:   in.Category,
		})
	}
	if in.Status != "" && !models.ValidStatuses[in.Status] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: draft, published, archived",
			Value:   in.Status,
		})
	}
	if in.MediaType != "" && !models.ValidMediaTypes[in.MediaType] {
		errors = append(errors, ValidationError{
			Field:   "mediaType",
			Message: "invalid media type, must be one of: Image, Video, Audio",
			Value:   in.MediaType,
		})
	}

	return errors
}

// ValidateLegacyPost validates a legacy post payload. Legacy categories are
// free text, so only presence is enforced.
func (v *Validator) ValidateLegacyPost(in *models.LegacyPostInput) []ValidationError {
	return v.structErrors(in)
}

// ValidatePortfolio validates a portfolio fact payload
func (v *Validator) ValidatePortfolio(in *models.PortfolioInput) []ValidationError {
	errors := v.structErrors(in)

	if in.MediaType != "" && !models.ValidMediaTypes[in.MediaType] {
		errors = append(errors, ValidationError{
			Field:   "mediaType",
			Message: "invalid media type, must be one of: Image, Video, Audio",
			Value:   in.MediaType,
		})
	}

	return errors
}

// ValidateSignup validates a registration payload
func (v *Validator) ValidateSignup(in *models.SignupInput) []ValidationError {
	return v.structErrors(in)
}

// ValidateComment validates a comment payload
func (v *Validator) ValidateComment(in *models.CommentInput) []ValidationError {
	errors := v.structErrors(in)

	if in.Body != "" {
		wordCount := len(strings.Fields(in.Body))
		if wordCount > models.MaxCommentWords {
			errors = append(errors, ValidationError{
				Field:   "comments",
				Message: fmt.Sprintf("comment exceeds maximum of %d words (has %d)", models.MaxCommentWords, wordCount),
			})
		}
	}

	return errors
}

// ValidateMessage validates a contact-form payload
func (v *Validator) ValidateMessage(in *models.MessageInput) []ValidationError {
	return v.structErrors(in)
}

// structErrors runs tag-level validation and flattens the result into the
// wire error shape.
func (v *Validator) structErrors(in interface{}) []ValidationError {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "payload", Message: err.Error()}}
	}

	var errors []ValidationError
	for _, fe := range invalid {
		errors = append(errors, ValidationError{
			Field:   fieldName(fe),
			Message: tagMessage(fe),
			Value:   fe.Value(),
		})
	}
	return errors
}

func fieldName(fe validator.FieldError) string {
	// Lowercase the struct field's first rune so errors match JSON names
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName(fe), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fieldName(fe), fe.Param())
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL format"
	default:
		return fmt.Sprintf("%s failed %s validation", fieldName(fe), fe.Tag())
	}
}
