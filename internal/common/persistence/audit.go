package persistence

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AuditColumn is the timestamp column gated by the save-with-date flag.
const AuditColumn = "updated_at"

// ErrNothingToUpdate signals an update request that carried no field changes
// and did not ask for a timestamp bump.
var ErrNothingToUpdate = errors.New("nothing to update")

// ParseSaveWithDate coerces the save_with_date flag callers send alongside an
// update. HTTP forms submit it as a string, JSON clients as a bool; the
// accepted true spellings are bool true, "true", "1" and "yes"
// (case-insensitive). Anything else, including absence, means false.
func ParseSaveWithDate(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}

// ApplyAuditPolicy decides what happens to the audit column as part of an
// update. When withDate is true the column advances to now. When it is false
// the previous stored value is re-asserted explicitly, so a database-level
// auto-touch on write cannot silently defeat the flag.
func ApplyAuditPolicy(fields map[string]interface{}, withDate bool, prev time.Time, now func() time.Time) map[string]interface{} {
	if withDate {
		fields[AuditColumn] = now()
	} else {
		fields[AuditColumn] = prev
	}
	return fields
}

// UpdateFields runs a partial update through UpdateColumns so GORM's own
// automatic UpdatedAt handling stays out of the way; the audit column is
// controlled entirely by ApplyAuditPolicy. Returns the number of rows touched.
func UpdateFields(db *gorm.DB, model interface{}, id interface{}, fields map[string]interface{}) (int64, error) {
	res := db.Model(model).Where("id = ?", id).UpdateColumns(fields)
	return res.RowsAffected, res.Error
}
