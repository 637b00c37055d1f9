package entities

// ReportMetadata carries the patient and clinic fields printed on a report.
// All fields are optional; the assembler substitutes explicit placeholders for
// anything left blank. ReportID is generated at assembly time when empty.
type ReportMetadata struct {
	PatientName  string
	PatientID    string
	DateOfBirth  string // YYYY-MM-DD
	Gender       string
	HospitalName string
	DoctorName   string
	AnalysisDate string
	ReportID     string
}
