package model

import (
	"time"

	"github.com/google/uuid"
)

// Party roles. Customers own sales orders; vendors own purchase orders,
// bills and purchase-order records.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
)

// Party is the unified customer/vendor record, distinguished by Role.
// A party referenced by any order, bill or purchase order cannot be
// hard-deleted; deletion is refused, never cascaded.
type Party struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Phone     *string
	Company   *string
	Address   *string
	Role      string `gorm:"size:10;not null;index;check:role IN ('customer','vendor')"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Party) TableName() string { return "parties" }
