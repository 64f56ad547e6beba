package entity

// Date and time layouts of the submission stamp columns.
const (
	SubmissionDateLayout = "2006-01-02"
	SubmissionTimeLayout = "15:04:05"
)

// Patient represents a registered patient record
type Patient struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName    string `gorm:"column:patient_name;type:text;not null" json:"patient_name"`
	LastName       string `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Age            int    `gorm:"column:age;not null" json:"age"`
	Ward           string `gorm:"column:ward;type:text;not null" json:"ward"`
	PatientCode    string `gorm:"column:patient_code;type:text;not null" json:"patient_code"`
	Specialist     string `gorm:"column:specialist;type:text;not null" json:"specialist"`
	SubmissionDate string `gorm:"column:submission_date;type:text;not null" json:"submission_date"`
	SubmissionTime string `gorm:"column:submission_time;type:text;not null" json:"submission_time"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientContentColumns are the only columns an edit may overwrite.
var PatientContentColumns = []string{
	"patient_name",
	"last_name",
	"age",
	"ward",
	"patient_code",
	"specialist",
}
