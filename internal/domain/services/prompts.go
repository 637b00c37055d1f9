package services

import (
	"fmt"
	"strings"
)

// AdviceOptions selects the advice prompt variant. The zero value asks for
// the comprehensive treatment plan; ProductTable switches to the strict
// tabular product-recommendation layout.
type AdviceOptions struct {
	ProductTable bool
	Budget       string
	Concerns     []string
}

// PromptBuilder produces the instruction text for each analysis mode. The
// assessment axes are enumerated explicitly so the model's output stays
// bullet-led and bold-emphasized, which is what the markup renderer expects.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Single builds the prompt for a single-image analysis.
func (b *PromptBuilder) Single() string {
	var sb strings.Builder

	sb.WriteString("As a professional hair specialist, analyze this hair image in detail:\n\n")

	sb.WriteString("1. Hair Characteristics:\n")
	sb.WriteString("   - Texture (straight, wavy, curly, coily)\n")
	sb.WriteString("   - Density (thin, medium, thick)\n")
	sb.WriteString("   - Diameter (fine, medium, coarse)\n")
	sb.WriteString("   - Porosity level\n\n")

	sb.WriteString("2. Scalp Condition:\n")
	sb.WriteString("   - Visible scalp health\n")
	sb.WriteString("   - Signs of irritation or abnormalities\n\n")

	sb.WriteString("3. Hair Health:\n")
	sb.WriteString("   - Ends condition (split ends, damage)\n")
	sb.WriteString("   - Breakage patterns\n")
	sb.WriteString("   - Signs of chemical damage\n")
	sb.WriteString("   - Moisture/protein balance indicators\n\n")

	sb.WriteString("4. Additional Observations:\n")
	sb.WriteString("   - Any visible scalp conditions\n")
	sb.WriteString("   - Hairline characteristics\n")
	sb.WriteString("   - Growth patterns\n\n")

	sb.WriteString("Provide:\n")
	sb.WriteString("- Detailed findings with confidence levels\n")
	sb.WriteString("- Clear explanations of technical terms\n")
	sb.WriteString("- Specific areas needing closer examination\n")
	sb.WriteString("- If anything is unclear, say so and specify what additional images would help\n")

	return sb.String()
}

// Multiple builds the prompt for a 2-4 image comparative analysis of the same
// patient. Per-image findings come first, then reconciliation across angles.
func (b *PromptBuilder) Multiple(count int, fileNames []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "As a senior hair specialist, analyze these %d images of the same patient's hair:\n\n", count)

	sb.WriteString("Perform COMPREHENSIVE ANALYSIS by:\n\n")

	sb.WriteString("1. Individual Image Analysis:\n")
	sb.WriteString("   - Analyze each image separately first\n")
	sb.WriteString("   - Note unique observations from each angle\n\n")

	sb.WriteString("2. Comparative Analysis:\n")
	sb.WriteString("   - Identify consistent characteristics across images\n")
	sb.WriteString("   - Resolve any discrepancies between images\n")
	sb.WriteString("   - Determine most accurate overall assessment\n\n")

	sb.WriteString("3. Detailed Assessment of:\n")
	sb.WriteString("   - Hair type and texture from all angles\n")
	sb.WriteString("   - Scalp health from visible areas\n")
	sb.WriteString("   - Hair density and distribution\n")
	sb.WriteString("   - Damage patterns and severity\n")
	sb.WriteString("   - Growth patterns and hairline\n\n")

	sb.WriteString("4. Final Evaluation:\n")
	sb.WriteString("   - Most likely hair characteristics\n")
	sb.WriteString("   - Confidence levels for each finding\n")
	sb.WriteString("   - Recommended additional views if needed\n\n")

	fmt.Fprintf(&sb, "Image Details: %s\n", strings.Join(fileNames, ", "))

	return sb.String()
}

// Advice builds the follow-up prompt asking for a treatment plan or, with the
// product-table variant, a strict tabular product recommendation.
func (b *PromptBuilder) Advice(analysisText string, opts AdviceOptions) string {
	if opts.ProductTable {
		return b.productAdvice(analysisText, opts)
	}

	var sb strings.Builder

	sb.WriteString("Based on this comprehensive hair analysis:\n")
	sb.WriteString(analysisText)
	sb.WriteString("\n\nProvide DETAILED TREATMENT PLAN including:\n\n")

	sb.WriteString("1. Immediate Care Recommendations:\n")
	sb.WriteString("   - Daily routine with specific product types\n")
	sb.WriteString("   - Key ingredients to look for\n")
	sb.WriteString("   - Application techniques\n\n")

	sb.WriteString("2. Professional Treatments:\n")
	sb.WriteString("   - Recommended salon treatments\n")
	sb.WriteString("   - Frequency\n")
	sb.WriteString("   - Expected outcomes\n\n")

	sb.WriteString("3. Product Recommendations:\n")
	sb.WriteString("   - For each recommended product type, suggest:\n")
	sb.WriteString("     - 1 budget option\n")
	sb.WriteString("     - 1 premium option\n")
	sb.WriteString("     - Key benefits of each\n")
	sb.WriteString("     - Where to purchase\n\n")

	sb.WriteString("4. Lifestyle Adjustments:\n")
	sb.WriteString("   - Dietary suggestions\n")
	sb.WriteString("   - Protective styling advice\n")
	sb.WriteString("   - Environmental protection\n\n")

	sb.WriteString("Format the recommendations clearly with headings for each category.\n")

	return sb.String()
}

func (b *PromptBuilder) productAdvice(analysisText string, opts AdviceOptions) string {
	concerns := "Not specified"
	if len(opts.Concerns) > 0 {
		concerns = strings.Join(opts.Concerns, ", ")
	}
	budget := opts.Budget
	if budget == "" {
		budget = "medium"
	}

	var sb strings.Builder

	sb.WriteString("From this hair analysis:\n")
	sb.WriteString(analysisText)
	sb.WriteString("\n\nIdentify the following characteristics:\n")
	sb.WriteString("1. Hair type (straight, wavy, curly, coily)\n")
	fmt.Fprintf(&sb, "2. Primary concerns: %s\n", concerns)
	sb.WriteString("3. Current condition (damaged, color-treated, etc.)\n\n")

	fmt.Fprintf(&sb, "Then provide specific product recommendations for a %s budget including:\n", budget)
	sb.WriteString("- 3 shampoo options at different price points\n")
	sb.WriteString("- 3 conditioner options\n")
	sb.WriteString("- 2 treatment products\n")
	sb.WriteString("- 1 styling product\n")
	sb.WriteString("For each product include:\n")
	sb.WriteString("- Brand and product name\n")
	sb.WriteString("- Key beneficial ingredients\n")
	sb.WriteString("- Where to purchase (e.g., Ulta, Sephora, drugstore)\n")
	sb.WriteString("- Price range\n\n")

	sb.WriteString("Format as a clear table with columns: Product Type, Brand/Name, Key Ingredients, Where to Buy, Price.\n")

	return sb.String()
}
