// Package catalog holds the fixed content of the chat script and pricing page
// as data: pain categories, canned options, messages and fallback plans.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	PainCategories []models.PainCategory `yaml:"pain_categories"`
	Chat           ChatScript            `yaml:"chat"`
	Pricing        Pricing               `yaml:"pricing"`
}

type ChatScript struct {
	SystemPrompt           string   `yaml:"system_prompt"`
	DurationOptions        []string `yaml:"duration_options"`
	OccurrenceOptions      []string `yaml:"occurrence_options"`
	InvalidCategoryMessage string   `yaml:"invalid_category_message"`
	UpsellMessage          string   `yaml:"upsell_message"`
	Disclaimer             string   `yaml:"disclaimer"`
	LLMErrorMessage        string   `yaml:"llm_error_message"`
}

type Pricing struct {
	AnnualPeriod  string        `yaml:"annual_period"`
	MonthlyPeriod string        `yaml:"monthly_period"`
	FallbackPlans []models.Plan `yaml:"fallback_plans"`
}

// Load parses the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog. It panics if the embedded file is broken.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.PainCategories) == 0 {
		return fmt.Errorf("catalog: pain_categories is empty")
	}
	if c.Chat.UpsellMessage == "" || c.Chat.InvalidCategoryMessage == "" {
		return fmt.Errorf("catalog: chat messages are incomplete")
	}
	if c.Pricing.AnnualPeriod == "" || c.Pricing.MonthlyPeriod == "" {
		return fmt.Errorf("catalog: pricing periods are required")
	}
	for i, p := range c.Pricing.FallbackPlans {
		if p.Name == "" {
			return fmt.Errorf("catalog: fallback plan %d has no name", i)
		}
		if p.Features == nil {
			c.Pricing.FallbackPlans[i].Features = []string{}
		}
		if p.NotIncluded == nil {
			c.Pricing.FallbackPlans[i].NotIncluded = []string{}
		}
	}
	return nil
}

// CategoryNames lists the pain category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.PainCategories))
	for _, cat := range c.PainCategories {
		names = append(names, cat.Name)
	}
	return names
}

// IsCategory reports whether text names a pain category, ignoring case.
func (c *Catalog) IsCategory(text string) bool {
	lowered := strings.ToLower(text)
	for _, cat := range c.PainCategories {
		if strings.ToLower(cat.Name) == lowered {
			return true
		}
	}
	return false
}

// Period returns the billing caption for the pricing page.
func (p Pricing) Period(isAnnual bool) string {
	if isAnnual {
		return p.AnnualPeriod
	}
	return p.MonthlyPeriod
}
