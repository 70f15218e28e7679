package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditActionCreate = "CREATE"
	AuditActionRead   = "READ"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// Metadata is a structured free-form payload attached to an audit record. It
// is stored as JSONB so a record can keep whatever happened without the rest
// of the model losing type safety.
type Metadata map[string]interface{}

// Value implements driver.Valuer for JSONB storage.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
}

// AuditLog represents one entry in the audit trail. UserID is the acting
// user when known; RecordID points at the affected row.
type AuditLog struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Endpoint  string     `json:"endpoint" db:"endpoint"`
	Message   string     `json:"message" db:"message"`
	TableName string     `json:"tableName" db:"table_name"`
	Action    string     `json:"action" db:"action"`
	RecordID  *uuid.UUID `json:"recordId,omitempty" db:"record_id"`
	UserID    *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	Meta      Metadata   `json:"meta,omitempty" db:"meta"`
	IP        string     `json:"ip" db:"ip"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`

	// ActorEmail is populated on listing by joining the users table; it is
	// not a column of the audit table itself.
	ActorEmail *string `json:"email" db:"email"`
}
