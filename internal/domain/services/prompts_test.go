package services

import (
	"strings"
	"testing"
)

func TestPromptBuilder_Single(t *testing.T) {
	prompt := NewPromptBuilder().Single()

	axes := []string{
		"Hair Characteristics",
		"Scalp Condition",
		"Hair Health",
		"Additional Observations",
		"Porosity level",
		"confidence levels",
	}
	for _, axis := range axes {
		if !strings.Contains(prompt, axis) {
			t.Errorf("Single() prompt missing %q", axis)
		}
	}
}

func TestPromptBuilder_Multiple(t *testing.T) {
	prompt := NewPromptBuilder().Multiple(3, []string{"front.jpg", "back.jpg", "crown.jpg"})

	wants := []string{
		"these 3 images",
		"Individual Image Analysis",
		"Comparative Analysis",
		"Resolve any discrepancies",
		"Recommended additional views",
		"front.jpg, back.jpg, crown.jpg",
	}
	for _, want := range wants {
		if !strings.Contains(prompt, want) {
			t.Errorf("Multiple() prompt missing %q", want)
		}
	}
}

func TestPromptBuilder_Advice(t *testing.T) {
	b := NewPromptBuilder()

	t.Run("comprehensive plan by default", func(t *testing.T) {
		prompt := b.Advice("wavy hair, dry ends", AdviceOptions{})

		wants := []string{
			"wavy hair, dry ends",
			"DETAILED TREATMENT PLAN",
			"Immediate Care Recommendations",
			"Professional Treatments",
			"Product Recommendations",
			"Lifestyle Adjustments",
		}
		for _, want := range wants {
			if !strings.Contains(prompt, want) {
				t.Errorf("Advice() prompt missing %q", want)
			}
		}
	})

	t.Run("product table variant", func(t *testing.T) {
		prompt := b.Advice("analysis", AdviceOptions{
			ProductTable: true,
			Budget:       "high",
			Concerns:     []string{"dryness", "breakage"},
		})

		wants := []string{
			"for a high budget",
			"Primary concerns: dryness, breakage",
			"Product Type, Brand/Name, Key Ingredients, Where to Buy, Price",
		}
		for _, want := range wants {
			if !strings.Contains(prompt, want) {
				t.Errorf("Advice() product prompt missing %q", want)
			}
		}
	})

	t.Run("product variant defaults", func(t *testing.T) {
		prompt := b.Advice("analysis", AdviceOptions{ProductTable: true})

		if !strings.Contains(prompt, "for a medium budget") {
			t.Error("Empty budget should default to medium")
		}
		if !strings.Contains(prompt, "Primary concerns: Not specified") {
			t.Error("Empty concerns should render as Not specified")
		}
	})
}
