package models

import (
	"time"
)

// AuditLog represents an operator-facing audit entry
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:255;not null;index" json:"actor"`
	Action    string    `gorm:"size:50;not null" json:"action"` // FINALIZE, LOCK, UNLOCK, OVERRIDE, ...
	Entity    string    `gorm:"size:50;not null" json:"entity"` // BillingPeriod, StatutoryComputation, ...
	EntityID  uint      `gorm:"index" json:"entity_id"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action constants
const (
	AuditActionFinalize       = "FINALIZE"
	AuditActionLock           = "LOCK"
	AuditActionUnlock         = "UNLOCK"
	AuditActionDelete         = "DELETE"
	AuditActionUpdateConfig   = "UPDATE_CONFIG"
	AuditActionOverride       = "OVERRIDE"
	AuditActionRevertOverride = "REVERT_OVERRIDE"
	AuditActionCreate         = "CREATE"
	AuditActionAssign         = "ASSIGN"
)

// Audit entity constants
const (
	AuditEntityBillingPeriod = "BillingPeriod"
	AuditEntityComputation   = "StatutoryComputation"
	AuditEntityConfig        = "StatutoryConfig"
	AuditEntityResult        = "EmployeeStatutory"
	AuditEntityEmployee      = "Employee"
)
