package campaign

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain/campaign"
)

// ErrSchema marks a backend response that does not match the documented
// shape. It always wraps domain.ErrUnavailable so callers treat it like any
// other backend failure.
var ErrSchema = fmt.Errorf("backend response does not match schema: %w", domain.ErrUnavailable)

// plainText strips every tag. Campaign descriptions are authored in a rich
// text editor and arrive as HTML fragments.
var plainText = bluemonday.StrictPolicy()

// ToDomainResult validates a search response and converts it to a domain
// result for the page that was requested. The returned PageState keeps the
// requested page clamped to what the backend reported.
func ToDomainResult(dto *SearchResponseDTO, requestedPage int) (*campaign.Result, error) {
	if dto == nil || dto.Data == nil {
		return nil, schemaError("missing data")
	}
	if dto.Pagination == nil || dto.Pagination.TotalPages == nil || dto.Pagination.TotalCount == nil {
		return nil, schemaError("missing pagination")
	}

	totalPages, totalCount := *dto.Pagination.TotalPages, *dto.Pagination.TotalCount
	if totalPages < 0 {
		return nil, schemaError(fmt.Sprintf("negative total_pages %d", totalPages))
	}
	if totalCount < 0 {
		return nil, schemaError(fmt.Sprintf("negative total_count %d", totalCount))
	}

	summaries := make([]campaign.Summary, 0, len(dto.Data))
	var errs []error
	for i := range dto.Data {
		s, err := ToDomainSummary(&dto.Data[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("data[%d]: %w", i, err))
			continue
		}
		summaries = append(summaries, s)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &campaign.Result{
		Campaigns: summaries,
		Page:      campaign.NewPageState(requestedPage, totalPages, totalCount),
	}, nil
}

// ToDomainSummary validates and converts a single search row. Descriptions
// are reduced to plain text; unknown statuses pass through unchanged.
func ToDomainSummary(dto *SummaryDTO) (campaign.Summary, error) {
	switch {
	case dto.ID <= 0:
		return campaign.Summary{}, schemaError(fmt.Sprintf("invalid id %d", dto.ID))
	case dto.Goal < 0:
		return campaign.Summary{}, schemaError(fmt.Sprintf("campaign %d: negative goal", dto.ID))
	case dto.Raised < 0:
		return campaign.Summary{}, schemaError(fmt.Sprintf("campaign %d: negative raised", dto.ID))
	case dto.Backers < 0:
		return campaign.Summary{}, schemaError(fmt.Sprintf("campaign %d: negative backers", dto.ID))
	}

	var cat campaign.Category
	if dto.Category != nil {
		cat = campaign.Category{ID: dto.Category.ID, Name: dto.Category.Name}
	}

	return campaign.Summary{
		ID:          dto.ID,
		Title:       strings.TrimSpace(dto.Title),
		Description: StripHTML(dto.Description),
		Goal:        dto.Goal,
		Raised:      dto.Raised,
		Status:      campaign.Status(dto.Status),
		Category:    cat,
		Backers:     dto.Backers,
		DaysLeft:    max(dto.DaysLeft, 0),
	}, nil
}

// ToDomainCategories validates and converts the category list.
func ToDomainCategories(dto *CategoryListResponseDTO) ([]campaign.Category, error) {
	if dto == nil || dto.Data == nil {
		return nil, schemaError("missing data")
	}

	categories := make([]campaign.Category, 0, len(dto.Data))
	for i, c := range dto.Data {
		if c.ID <= 0 || strings.TrimSpace(c.Name) == "" {
			return nil, schemaError(fmt.Sprintf("data[%d]: category needs a positive id and a name", i))
		}
		categories = append(categories, campaign.Category{ID: c.ID, Name: strings.TrimSpace(c.Name)})
	}
	return categories, nil
}

// StripHTML reduces an HTML fragment to whitespace-normalized plain text.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	// Block-level closings become spaces so adjacent paragraphs don't fuse.
	s = strings.NewReplacer("</p>", " </p>", "<br>", " <br>", "<br/>", " <br/>", "<br />", " <br />").Replace(s)
	text := html.UnescapeString(plainText.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

func schemaError(detail string) error {
	return fmt.Errorf("%s: %w", detail, ErrSchema)
}
