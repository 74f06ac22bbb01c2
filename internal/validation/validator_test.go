package validation

import (
	"strings"
	"testing"

	"github.com/blogfolio-api/internal/models"
)

func TestValidateBlog(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   models.BlogInput
		wantErr bool
		field   string
	}{
		{
			name:  "valid minimal",
			input: models.BlogInput{Title: "A valid title", Category: "Technology"},
		},
		{
			name:    "missing title",
			input:   models.BlogInput{Category: "Technology"},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "title too short",
			input:   models.BlogInput{Title: "abc", Category: "Technology"},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "title too long",
			input:   models.BlogInput{Title: strings.Repeat("x", 201), Category: "Technology"},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "unknown category",
			input:   models.BlogInput{Title: "A valid title", Category: "Gardening"},
			wantErr: true,
			field:   "category",
		},
		{
			name:    "unknown status",
			input:   models.BlogInput{Title: "A valid title", Category: "Technology", Status: "hidden"},
			wantErr: true,
			field:   "status",
		},
		{
			name:    "unknown media type",
			input:   models.BlogInput{Title: "A valid title", Category: "Technology", MediaType: "Hologram"},
			wantErr: true,
			field:   "mediaType",
		},
		{
			name:    "bad github link",
			input:   models.BlogInput{Title: "A valid title", Category: "Technology", GithubLink: "not a url"},
			wantErr: true,
			field:   "githubLink",
		},
		{
			name:  "all optional fields valid",
			input: models.BlogInput{Title: "A valid title", Category: "Technology", Status: "draft", MediaType: "Video", GithubLink: "https://github.com/a/b", Description: "long enough text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateBlog(&tt.input)
			if !tt.wantErr {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateComment_WordLimit(t *testing.T) {
	v := New()

	ok := models.CommentInput{PostID: "p1", Body: strings.Repeat("word ", models.MaxCommentWords)}
	if errs := v.ValidateComment(&ok); len(errs) != 0 {
		t.Fatalf("expected comment at the limit to pass, got %v", errs)
	}

	over := models.CommentInput{PostID: "p1", Body: strings.Repeat("word ", models.MaxCommentWords+1)}
	errs := v.ValidateComment(&over)
	if len(errs) != 1 || errs[0].Field != "comments" {
		t.Fatalf("expected word-limit error, got %v", errs)
	}
}

func TestValidateMessage(t *testing.T) {
	v := New()

	valid := models.MessageInput{SenderName: "Visitor", SenderEmail: "v@example.com", Body: "hi", ReceiverID: "u1"}
	if errs := v.ValidateMessage(&valid); len(errs) != 0 {
		t.Fatalf("expected valid message, got %v", errs)
	}

	invalid := models.MessageInput{SenderName: "Visitor", SenderEmail: "nope", Body: "hi", ReceiverID: "u1"}
	errs := v.ValidateMessage(&invalid)
	if len(errs) != 1 || errs[0].Message != "invalid email format" {
		t.Fatalf("expected email format error, got %v", errs)
	}
}

func TestFieldNamesMatchJSON(t *testing.T) {
	v := New()

	errs := v.ValidateSignup(&models.SignupInput{})
	if len(errs) == 0 {
		t.Fatal("expected errors for empty signup")
	}
	for _, e := range errs {
		if e.Field != strings.ToLower(e.Field[:1])+e.Field[1:] {
			t.Errorf("field %q not lowercased to match JSON", e.Field)
		}
	}
}
