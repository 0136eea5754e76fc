package projects

import (
	"time"

	"github.com/projectscope/projectscope-backend/pkg/enums"
)

// Project is one real-world development or construction project. The catalog
// is seeded at process start and treated as read-only reference data; ROI
// display rules (currentRoi for completed projects, expectedRoi otherwise)
// belong to the client, not the store.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Country  string `json:"country"`
	City     string `json:"city"`
	District string `json:"district"`

	Sector       string              `json:"sector"`
	Subsector    string              `json:"subsector,omitempty"`
	ProjectType  string              `json:"projectType"`
	ContractType string              `json:"contractType,omitempty"`
	Status       enums.ProjectStatus `json:"status"`

	// InvestmentM is the project value in millions of USD.
	InvestmentM float64  `json:"investment"`
	ExpectedROI *float64 `json:"expectedRoi,omitempty"`
	CurrentROI  *float64 `json:"currentRoi,omitempty"`

	Size        string `json:"size,omitempty"`
	Capacity    string `json:"capacity,omitempty"`
	Floors      int    `json:"floors,omitempty"`
	BuiltUpArea string `json:"builtUpArea,omitempty"`

	// Features is an ordered tag list; uniqueness is not enforced.
	Features []string `json:"features"`

	IsLuxury      bool `json:"isLuxury"`
	IsWaterfront  bool `json:"isWaterfront"`
	IsSustainable bool `json:"isSustainable"`

	CreatedAt time.Time `json:"createdAt"`
}
