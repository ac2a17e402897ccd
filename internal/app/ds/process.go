package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 4. Таблица бизнес-процессов
type BusinessProcess struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	// Отделы-участники, JSON-массив строк в колонке
	Departments  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	AllowedRoles string                      `gorm:"type:varchar(255);default:''"`
	CreatedAt    time.Time                   `gorm:"not null"`
	UpdatedAt    time.Time

	// Шаги процесса, порядок задаётся StepNumber
	Steps []ProcessStep `gorm:"foreignKey:ProcessID;constraint:OnDelete:CASCADE"`
}

func (p *BusinessProcess) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// 5. Таблица шагов бизнес-процессов
type ProcessStep struct {
	ID          uint   `gorm:"primaryKey"`
	ProcessID   string `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_process_step"`
	StepNumber  int    `gorm:"not null;uniqueIndex:idx_process_step"` // 1-based, задаёт порядок
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Responsible string `gorm:"type:varchar(100)"`
	Duration    string `gorm:"type:varchar(50)"`
	// Слабые ссылки на материалы: только id, без внешнего ключа,
	// могут указывать на удалённый контент
	RelatedContentIDs datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}
