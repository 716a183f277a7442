package postgres

import (
	"context"

	"saleslens/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// indexStatements add the indexes AutoMigrate cannot express.
var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_sales_records_tags ON sales_records USING GIN (tags)",
	"CREATE INDEX IF NOT EXISTS idx_sales_records_text ON sales_records USING GIN (" + textSearchVector + ")",
	"CREATE INDEX IF NOT EXISTS idx_sales_records_date_id ON sales_records (date DESC NULLS LAST, id DESC)",
}

// Migrate creates the sales table and its secondary indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.SalesRecordModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate sales_records")
	}

	for _, stmt := range indexStatements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to create index: %s", stmt)
		}
	}

	return nil
}
