package services

import (
	"socialgraph/domain/core/entities"
	"socialgraph/domain/core/valueobjects"
	"socialgraph/domain/specifications"
	pkgerrors "socialgraph/pkg/errors"
)

// FilterCriteria describes the four independent predicate families
// combined with AND semantics. Zero-valued families always pass.
type FilterCriteria struct {
	IncludeKeywords  []string
	ExcludeKeywords  []string
	AuthorAttributes valueobjects.Attributes
	TimeRange        valueobjects.TimeRange
}

// IsZero reports whether no filter family is set
func (c FilterCriteria) IsZero() bool {
	return len(c.IncludeKeywords) == 0 &&
		len(c.ExcludeKeywords) == 0 &&
		len(c.AuthorAttributes) == 0 &&
		c.TimeRange.IsZero()
}

// FilterResult carries the matched posts in input order. Applied lets
// consumers tell an empty match apart from filters never being given, so
// they can report "no matches" instead of silently rendering nothing.
type FilterResult struct {
	Posts   []*entities.Post
	Applied bool
}

// PostFilter evaluates compound inclusion and exclusion predicates over a
// post set
type PostFilter struct{}

// NewPostFilter creates a new post filter
func NewPostFilter() *PostFilter {
	return &PostFilter{}
}

// Apply filters posts against the criteria, preserving input order. Every
// post's author must resolve through the authors table; a dangling author
// reference fails the whole call.
func (f *PostFilter) Apply(
	posts []*entities.Post,
	authors map[valueobjects.Username]*entities.User,
	criteria FilterCriteria,
) (FilterResult, error) {
	spec := specifications.And[specifications.PostCandidate](
		specifications.NewTimeRangeSpec(criteria.TimeRange),
		specifications.NewAuthorAttributesSpec(criteria.AuthorAttributes),
		specifications.NewIncludeKeywordsSpec(criteria.IncludeKeywords),
		specifications.NewExcludeKeywordsSpec(criteria.ExcludeKeywords),
	)

	result := FilterResult{Applied: !criteria.IsZero()}
	for _, post := range posts {
		author, known := authors[post.Author()]
		if !known {
			return FilterResult{}, pkgerrors.NewUnknownReferenceError("user", post.Author().String())
		}
		if spec.IsSatisfiedBy(specifications.PostCandidate{Post: post, Author: author}) {
			result.Posts = append(result.Posts, post)
		}
	}
	return result, nil
}
