package dto

// DefaultExportHeaders label the columns produced by converter.PatientsToRows.
var DefaultExportHeaders = []string{
	"First Name",
	"Last Name",
	"Age",
	"Ward",
	"Patient Code",
	"Specialist",
	"Submission Date",
	"Submission Time",
	"Row",
}
