package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCardImages caps how many image references a card may carry.
const MaxCardImages = 2

type CardCategory string

const (
	CategoryProblem   CardCategory = "problem"
	CategorySolution  CardCategory = "solution"
	CategoryDesign    CardCategory = "design"
	CategoryTechStack CardCategory = "tech_stack"
)

func (c CardCategory) Valid() bool {
	switch c {
	case CategoryProblem, CategorySolution, CategoryDesign, CategoryTechStack:
		return true
	}
	return false
}

// ValidationCard is a proposal awaiting stakeholder judgment. Cards are
// immutable after creation and are never deleted.
type ValidationCard struct {
	ID                uuid.UUID    `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	ImageURLs         []string     `json:"image_urls,omitempty"`
	Category          CardCategory `json:"category"`
	CreatedBy         string       `json:"created_by"`
	CreatedAt         time.Time    `json:"created_at"`
	Audience          []string     `json:"audience"`
	ContextParameters []string     `json:"context_parameters,omitempty"`
}
