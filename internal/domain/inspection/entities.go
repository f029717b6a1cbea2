package inspection

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentOverdue PaymentStatus = "overdue"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceGenerated InvoiceStatus = "generated"
	InvoiceSent      InvoiceStatus = "sent"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var Regions = []string{"North", "South", "East", "West", "Central"}

var ErrNotFound = errors.New("inspection: report not found")

type Report struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	ReportID      string         `gorm:"size:32;uniqueIndex:ux_inspections_report_id" json:"report_id"`
	Date          time.Time      `gorm:"type:date" json:"date"`
	LoanAcNo      string         `gorm:"size:64;column:loan_ac_no" json:"loan_ac_no"`
	CustomerName  string         `gorm:"size:255" json:"customer_name"`
	LoanAmount    float64        `gorm:"type:decimal(18,2)" json:"loan_amount"`
	Location      string         `gorm:"size:255" json:"location"`
	Region        string         `gorm:"size:16" json:"region"`
	State         string         `gorm:"size:64" json:"state"`
	LARRemarks    string         `gorm:"type:text;column:lar_remarks" json:"lar_remarks"`
	PaymentStatus PaymentStatus  `gorm:"type:enum('pending','paid','partial','overdue');default:'pending'" json:"payment_status"`
	InvoiceStatus InvoiceStatus  `gorm:"type:enum('pending','generated','sent','cancelled');default:'pending'" json:"invoice_status"`
	CreatedBy     string         `gorm:"size:32;index:idx_inspections_created_by" json:"created_by"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Report) TableName() string { return "field_inspection_reports" }
