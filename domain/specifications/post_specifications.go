package specifications

import (
	"strings"

	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
)

// PostCandidate pairs a post with its resolved author for filtering.
// The author is resolved up front so predicates stay pure lookups.
type PostCandidate struct {
	Post   *entities.Post
	Author *entities.User
}

// PostSpecification is a specification over post candidates
type PostSpecification interface {
	Specification[PostCandidate]
}

// TimeRangeSpec passes posts created within an inclusive time range
type TimeRangeSpec struct {
	timeRange valueobjects.TimeRange
}

// NewTimeRangeSpec creates a time range specification
func NewTimeRangeSpec(r valueobjects.TimeRange) *TimeRangeSpec {
	return &TimeRangeSpec{timeRange: r}
}

// IsSatisfiedBy checks the post's creation time against the range
func (s *TimeRangeSpec) IsSatisfiedBy(candidate PostCandidate) bool {
	if candidate.Post == nil {
		return false
	}
	return s.timeRange.Contains(candidate.Post.CreatedAt())
}

// AuthorAttributesSpec passes posts whose author carries every required
// attribute with a strictly equal value. A missing key or a value of a
// different kind rejects the post.
type AuthorAttributesSpec struct {
	required valueobjects.Attributes
}

// NewAuthorAttributesSpec creates an author attribute specification
func NewAuthorAttributesSpec(required valueobjects.Attributes) *AuthorAttributesSpec {
	return &AuthorAttributesSpec{required: required}
}

// IsSatisfiedBy checks every required attribute against the author
func (s *AuthorAttributesSpec) IsSatisfiedBy(candidate PostCandidate) bool {
	if candidate.Author == nil {
		return false
	}
	attrs := candidate.Author.Attributes()
	for key, want := range s.required {
		got, ok := attrs.Get(key)
		if !ok || !got.Equals(want) {
			return false
		}
	}
	return true
}

// IncludeKeywordsSpec passes posts containing at least one keyword as a
// case-insensitive substring. An empty keyword list passes everything.
type IncludeKeywordsSpec struct {
	keywords []string
}

// NewIncludeKeywordsSpec creates an include keyword specification.
// Keywords are case-folded once at construction.
func NewIncludeKeywordsSpec(keywords []string) *IncludeKeywordsSpec {
	return &IncludeKeywordsSpec{keywords: foldKeywords(keywords)}
}

// IsSatisfiedBy checks for any keyword hit in the post content
func (s *IncludeKeywordsSpec) IsSatisfiedBy(candidate PostCandidate) bool {
	if len(s.keywords) == 0 {
		return true
	}
	if candidate.Post == nil {
		return false
	}
	content := strings.ToLower(candidate.Post.Content())
	for _, kw := range s.keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

// ExcludeKeywordsSpec rejects posts containing any keyword as a
// case-insensitive substring. An empty keyword list rejects nothing.
type ExcludeKeywordsSpec struct {
	keywords []string
}

// NewExcludeKeywordsSpec creates an exclude keyword specification
func NewExcludeKeywordsSpec(keywords []string) *ExcludeKeywordsSpec {
	return &ExcludeKeywordsSpec{keywords: foldKeywords(keywords)}
}

// IsSatisfiedBy passes only when no excluded keyword appears in the content
func (s *ExcludeKeywordsSpec) IsSatisfiedBy(candidate PostCandidate) bool {
	if len(s.keywords) == 0 {
		return true
	}
	if candidate.Post == nil {
		return false
	}
	content := strings.ToLower(candidate.Post.Content())
	for _, kw := range s.keywords {
		if strings.Contains(content, kw) {
			return false
		}
	}
	return true
}

func foldKeywords(keywords []string) []string {
	folded := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		folded = append(folded, strings.ToLower(kw))
	}
	return folded
}
