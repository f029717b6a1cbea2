package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type inspectionSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	ReportID      string         `gorm:"size:32;column:report_id"`
	Date          time.Time      `gorm:"column:date"`
	LoanAcNo      string         `gorm:"column:loan_ac_no"`
	CustomerName  string         `gorm:"column:customer_name"`
	LoanAmount    float64        `gorm:"column:loan_amount"`
	Location      string         `gorm:"column:location"`
	Region        string         `gorm:"column:region"`
	State         string         `gorm:"column:state"`
	LARRemarks    string         `gorm:"column:lar_remarks"`
	PaymentStatus string         `gorm:"type:text;column:payment_status"`
	InvoiceStatus string         `gorm:"type:text;column:invoice_status"`
	CreatedBy     string         `gorm:"column:created_by"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (inspectionSQLite) TableName() string { return "field_inspection_reports" }

type payoutSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	ReportID         string         `gorm:"size:32;column:report_id"`
	Month            string         `gorm:"column:month"`
	Financier        string         `gorm:"column:financier"`
	LoanAmount       float64        `gorm:"column:loan_amount"`
	PayoutPercentage float64        `gorm:"column:payout_percentage"`
	AmountPaid       float64        `gorm:"column:amount_paid"`
	LessTDS          float64        `gorm:"column:less_tds"`
	Nett             float64        `gorm:"column:nett"`
	BankDetails      string         `gorm:"column:bank_details"`
	PAN              string         `gorm:"column:pan"`
	SMName           string         `gorm:"column:sm_name"`
	ContactNo        string         `gorm:"column:contact_no"`
	MailSent         string         `gorm:"type:text;column:mail_sent"`
	PaymentStatus    string         `gorm:"type:text;column:payment_status"`
	CreatedBy        string         `gorm:"column:created_by"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (payoutSQLite) TableName() string { return "payout_reports" }

type submissionSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	SubmissionID string    `gorm:"size:32;column:submission_id"`
	Name         string    `gorm:"column:name"`
	Address      string    `gorm:"column:address"`
	Mobile       string    `gorm:"column:mobile"`
	Summary      string    `gorm:"column:summary"`
	Status       string    `gorm:"type:text;column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (submissionSQLite) TableName() string { return "submissions" }

type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	UserID       string    `gorm:"size:32;column:user_id"`
	Email        string    `gorm:"uniqueIndex;column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userSQLite) TableName() string { return "users" }

type roleSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"size:32;column:user_id"`
	Role      string    `gorm:"type:text;column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (roleSQLite) TableName() string { return "user_roles" }

type headerSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	CompanyName  string    `gorm:"column:company_name"`
	Address      string    `gorm:"column:address"`
	ContactEmail string    `gorm:"column:contact_email"`
	LogoURL      string    `gorm:"column:logo_url"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (headerSQLite) TableName() string { return "header_details" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models with their MySQL enums.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&inspectionSQLite{},
		&payoutSQLite{},
		&submissionSQLite{},
		&userSQLite{},
		&roleSQLite{},
		&headerSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
