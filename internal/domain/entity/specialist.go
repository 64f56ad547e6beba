package entity

// Specialist represents a visiting doctor patients can be assigned to.
// Rows are never removed; IsActive=false hides them from new assignments.
type Specialist struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SpecialistName string `gorm:"column:specialist_name;type:text;not null" json:"specialist_name"`
	IsActive       *bool  `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (Specialist) TableName() string {
	return "specialists"
}

// Active reports the soft-delete flag, treating an unset flag as active.
func (s *Specialist) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

// DefaultSpecialists seeds an empty specialists table. The names are
// stored as written; existing store files already hold these exact strings.
var DefaultSpecialists = []string{
	"قلب و عروق - دکتر کریمی",
	"داخلی - دکتر رضایی",
	"اطفال - دکتر محمدی",
	"پوست - دکتر قاسمی",
	"چشم - دکتر احمدی",
	"ارتوپدی - دکتر حسینی",
	"گوش و حلق و بینی - دکتر نوری",
	"مغز و اعصاب - دکتر مرادی",
	"جراحی - دکتر یوسفی",
	"اورولوژی - دکتر بهرامی",
	"زنان و زایمان - دکتر علوی",
	"ریه - دکتر پارسا",
	"غدد - دکتر اکبری",
	"گوارش - دکتر شجاعی",
	"روانپزشکی - دکتر جمشیدی",
}
