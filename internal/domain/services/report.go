package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/arunmack789/Hair-Analysis-Report/internal/domain/entities"
)

// ErrNothingToReport indicates a report was requested with no stored analysis.
var ErrNothingToReport = errors.New("no analysis results to report")

const notSpecified = "Not specified"

// ReportAssembler composes the final clinical-style HTML document from the
// rendered narratives and patient metadata. The document is self-contained:
// inline styles, no external assets, fixed section order.
type ReportAssembler struct {
	now func() time.Time
}

func NewReportAssembler() *ReportAssembler {
	return &ReportAssembler{now: time.Now}
}

// Assemble renders both narratives and builds the document. It fails only
// when the analysis text is empty; a missing advice narrative is the caller's
// earlier responsibility and renders as an empty section here.
//
// Metadata values are interpolated verbatim; callers are responsible for not
// injecting markup.
func (a *ReportAssembler) Assemble(analysisText, adviceText string, meta entities.ReportMetadata) (string, error) {
	if analysisText == "" {
		return "", ErrNothingToReport
	}

	analysisHTML := RenderHTML(analysisText)
	adviceHTML := RenderHTML(adviceText)

	now := a.now()
	age := ageFrom(meta.DateOfBirth, now)

	reportID := meta.ReportID
	if reportID == "" {
		reportID = GenerateReportID(now)
	}

	patientName := orPlaceholder(meta.PatientName)
	generatedAt := now.Format("2006-01-02 15:04:05")

	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
`)
	fmt.Fprintf(&sb, "<title>Hair Analysis Report - %s</title>\n", patientName)
	sb.WriteString(`<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f9f9f9; }
.page { width: 21cm; min-height: 29.7cm; margin: 1cm auto; padding: 2cm; background: white; box-shadow: 0 0 10px rgba(0, 0, 0, 0.1); }
header { border-bottom: 2px solid #0066cc; padding-bottom: 20px; margin-bottom: 30px; }
.header-content { display: flex; justify-content: space-between; align-items: flex-end; }
.patient-info { margin: 20px 0; background: #f0f8ff; padding: 15px; border-radius: 5px; }
.info-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 10px; }
.info-item strong { display: inline-block; width: 120px; }
h1, h2, h3 { color: #0066cc; }
h1 { margin-top: 0; }
h2 { border-bottom: 1px solid #ddd; padding-bottom: 5px; margin-top: 30px; }
ul { padding-left: 20px; }
.footer { margin-top: 50px; text-align: center; font-size: 0.8em; color: #666; }
.signature { margin-top: 50px; display: flex; justify-content: space-between; }
.signature-line { width: 200px; border-top: 1px solid #333; text-align: center; padding-top: 5px; }
</style>
</head>
<body>
<div class="page">
<header>
<div class="header-content">
<div>
<h1>Hair Analysis Report</h1>
`)
	fmt.Fprintf(&sb, "<p><strong>Hospital/Clinic:</strong> %s</p>\n", orPlaceholder(meta.HospitalName))
	sb.WriteString("</div>\n<div>\n")
	fmt.Fprintf(&sb, "<p><strong>Report ID:</strong> %s</p>\n", reportID)
	fmt.Fprintf(&sb, "<p><strong>Date:</strong> %s</p>\n", orPlaceholder(meta.AnalysisDate))
	sb.WriteString(`</div>
</div>
</header>

<div class="patient-info">
<h3>Patient Information</h3>
<div class="info-grid">
`)
	fmt.Fprintf(&sb, "<div class=\"info-item\"><strong>Name:</strong> %s</div>\n", patientName)
	fmt.Fprintf(&sb, "<div class=\"info-item\"><strong>Patient ID:</strong> %s</div>\n", orPlaceholder(meta.PatientID))
	fmt.Fprintf(&sb, "<div class=\"info-item\"><strong>Date of Birth:</strong> %s (Age: %s)</div>\n", orPlaceholder(meta.DateOfBirth), age)
	fmt.Fprintf(&sb, "<div class=\"info-item\"><strong>Gender:</strong> %s</div>\n", orPlaceholder(meta.Gender))
	fmt.Fprintf(&sb, "<div class=\"info-item\"><strong>Doctor:</strong> %s</div>\n", orPlaceholder(meta.DoctorName))
	fmt.Fprintf(&sb, "<div class=\"info-item\"><strong>Analysis Date:</strong> %s</div>\n", orPlaceholder(meta.AnalysisDate))
	sb.WriteString(`</div>
</div>

<section>
<h2>Hair Analysis Findings</h2>
`)
	sb.WriteString(analysisHTML)
	sb.WriteString(`
</section>

<section>
<h2>Treatment Recommendations</h2>
`)
	sb.WriteString(adviceHTML)
	sb.WriteString(`
</section>

<div class="signature">
<div class="signature-line">
<p>Doctor/Specialist Signature</p>
</div>
<div class="signature-line">
`)
	fmt.Fprintf(&sb, "<p>Date: %s</p>\n", now.Format("2006-01-02"))
	sb.WriteString(`</div>
</div>

<div class="footer">
`)
	fmt.Fprintf(&sb, "<p>Report generated on %s by Professional Hair Analysis System</p>\n", generatedAt)
	sb.WriteString(`<p>This report is confidential and intended for the patient and their healthcare provider only.</p>
</div>
</div>
</body>
</html>
`)

	return sb.String(), nil
}

// GenerateReportID builds a human-readable report identifier in the form
// HA####-YYYYMMDD. The 4-digit number is random and not guaranteed unique
// across reports; collisions are accepted.
func GenerateReportID(now time.Time) string {
	return fmt.Sprintf("HA%04d-%s", 1000+rand.Intn(9000), now.Format("20060102"))
}

// ageFrom computes whole years elapsed since a YYYY-MM-DD birth date,
// birthday-aware: decremented by one when the current month/day precedes the
// birth month/day. Unparsable or future dates yield "unavailable".
func ageFrom(dob string, today time.Time) string {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return "unavailable"
	}

	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return "unavailable"
	}
	return fmt.Sprintf("%d", years)
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return notSpecified
	}
	return value
}
