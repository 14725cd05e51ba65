package scope

import "gorm.io/gorm"

// Active keeps rows whose ativo flag is set. An empty table prefix
// means the unqualified column.
func Active(table string) func(db *gorm.DB) *gorm.DB {
	col := "ativo"
	if table != "" {
		col = table + ".ativo"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(col+" = ?", true)
	}
}

func DueDay(table string, day *int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if day == nil {
			return db
		}
		col := "dia_cobranca"
		if table != "" {
			col = table + ".dia_cobranca"
		}
		return db.Where(col+" = ?", *day)
	}
}

func Period(table, competencia string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col := "competencia"
		if table != "" {
			col = table + ".competencia"
		}
		return db.Where(col+" = ?", competencia)
	}
}
