// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/query"
	"saleslens/internal/domain/repository"
	"saleslens/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertChunkSize keeps a single INSERT well under the 65535 bind parameter limit.
const insertChunkSize = 1000

var fieldColumns = map[query.Field]string{
	query.FieldCustomerName:    "customer_name",
	query.FieldPhoneNumber:     "phone_number",
	query.FieldCustomerRegion:  "customer_region",
	query.FieldGender:          "gender",
	query.FieldProductCategory: "product_category",
	query.FieldPaymentMethod:   "payment_method",
	query.FieldTags:            "tags",
	query.FieldAge:             "age",
	query.FieldDate:            "date",
	query.FieldQuantity:        "quantity",
}

// textSearchVector must match the expression index created by Migrate.
const textSearchVector = "to_tsvector('simple', customer_name || ' ' || phone_number)"

// condition is one parameterized WHERE fragment.
type condition struct {
	expr string
	args []any
}

// salesRepository implements the repository.SalesRepository interface.
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository is the constructor for salesRepository.
func NewSalesRepository(db *gorm.DB) repository.SalesRepository {
	return &salesRepository{
		db: db,
	}
}

// Find retrieves one sorted page of matching records.
func (repo *salesRepository) Find(ctx context.Context, q query.Query, page repository.Page) ([]*entity.SalesRecord, error) {
	tx, err := repo.scoped(ctx, q)
	if err != nil {
		return nil, err
	}

	order, err := orderBy(page.Sort)
	if err != nil {
		return nil, err
	}

	var salesModels []*model.SalesRecordModel
	if err := tx.
		Order(order).
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&salesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sales records")
	}

	records := make([]*entity.SalesRecord, 0, len(salesModels))
	for _, m := range salesModels {
		records = append(records, toSalesDomain(m))
	}

	return records, nil
}

// Count returns the number of matching records.
func (repo *salesRepository) Count(ctx context.Context, q query.Query) (int64, error) {
	tx, err := repo.scoped(ctx, q)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sales records")
	}

	return total, nil
}

// Distinct lists the distinct values of a categorical column. Tags are unnested first.
func (repo *salesRepository) Distinct(ctx context.Context, field query.Field) ([]string, error) {
	column, ok := fieldColumns[field]
	if !ok {
		return nil, errors.Errorf("unknown field %q", field)
	}

	var values []string
	var err error
	if field == query.FieldTags {
		err = repo.db.WithContext(ctx).
			Raw("SELECT DISTINCT unnest(tags) AS value FROM sales_records").
			Scan(&values).Error
	} else {
		err = repo.db.WithContext(ctx).
			Model(&model.SalesRecordModel{}).
			Distinct(column).
			Pluck(column, &values).Error
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list distinct %s", field)
	}

	return values, nil
}

// Summarize aggregates the whole table in one statement.
func (repo *salesRepository) Summarize(ctx context.Context) (*entity.Statistics, error) {
	var row struct {
		TotalSales        float64
		TotalQuantity     float64
		AverageOrderValue float64
		TotalTransactions int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SalesRecordModel{}).
		Select(`COALESCE(SUM(final_amount), 0) AS total_sales,
			COALESCE(SUM(quantity), 0) AS total_quantity,
			COALESCE(AVG(final_amount), 0) AS average_order_value,
			COUNT(*) AS total_transactions`).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize sales records")
	}

	return &entity.Statistics{
		TotalSales:        row.TotalSales,
		TotalQuantity:     row.TotalQuantity,
		AverageOrderValue: row.AverageOrderValue,
		TotalTransactions: row.TotalTransactions,
	}, nil
}

// InsertMany inserts with ON CONFLICT DO NOTHING and reads back which ids landed.
// Records whose id is missing afterwards collided with an existing fingerprint.
func (repo *salesRepository) InsertMany(ctx context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
	if len(records) == 0 {
		return []repository.InsertOutcome{}, nil
	}

	salesModels := make([]*model.SalesRecordModel, 0, len(records))
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		m := fromSalesDomain(r)
		salesModels = append(salesModels, m)
		ids = append(ids, m.ID)
	}

	var insertedIDs []uuid.UUID
	err := withTransaction(ctx, repo.db, func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(salesModels, insertChunkSize).Error; err != nil {
			return err
		}

		return tx.Model(&model.SalesRecordModel{}).
			Where("id IN ?", ids).
			Pluck("id", &insertedIDs).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert sales records")
	}

	inserted := make(map[uuid.UUID]struct{}, len(insertedIDs))
	for _, id := range insertedIDs {
		inserted[id] = struct{}{}
	}

	outcomes := make([]repository.InsertOutcome, len(records))
	for i, id := range ids {
		if _, ok := inserted[id]; ok {
			outcomes[i] = repository.InsertOutcome{RecordID: id, Status: repository.Inserted}

			continue
		}
		outcomes[i] = repository.InsertOutcome{
			RecordID: id,
			Status:   repository.Rejected,
			Reason:   repository.ReasonDuplicate,
			Detail:   "fingerprint already exists",
		}
	}

	return outcomes, nil
}

// InsertOne persists a single record.
func (repo *salesRepository) InsertOne(ctx context.Context, record *entity.SalesRecord) error {
	salesM := fromSalesDomain(record)

	if err := repo.db.WithContext(ctx).Create(salesM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSale
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "sales record violates a table constraint")
		}

		return errors.Wrap(err, "failed to create sales record")
	}

	record.CreatedAt = salesM.CreatedAt
	record.UpdatedAt = salesM.UpdatedAt

	return nil
}

func (repo *salesRepository) scoped(ctx context.Context, q query.Query) (*gorm.DB, error) {
	conditions, err := buildConditions(q)
	if err != nil {
		return nil, err
	}

	tx := repo.db.WithContext(ctx).Model(&model.SalesRecordModel{})
	for _, c := range conditions {
		tx = tx.Where(c.expr, c.args...)
	}

	return tx, nil
}

// buildConditions translates a query into WHERE fragments, one per bound.
func buildConditions(q query.Query) ([]condition, error) {
	conditions := make([]condition, 0, len(q.Clauses))

	for _, c := range q.Clauses {
		switch c := c.(type) {
		case query.TextClause:
			conditions = append(conditions, condition{
				expr: textSearchVector + " @@ plainto_tsquery('simple', ?)",
				args: []any{c.Search},
			})
		case query.InClause:
			column, ok := fieldColumns[c.Field]
			if !ok {
				return nil, errors.Errorf("unknown field %q", c.Field)
			}
			if c.Field == query.FieldTags {
				conditions = append(conditions, condition{expr: "tags && ?", args: []any{pq.StringArray(c.Values)}})
			} else {
				conditions = append(conditions, condition{expr: column + " IN ?", args: []any{c.Values}})
			}
		case query.IntRangeClause:
			column, ok := fieldColumns[c.Field]
			if !ok {
				return nil, errors.Errorf("unknown field %q", c.Field)
			}
			if c.Min != nil {
				conditions = append(conditions, condition{expr: column + " >= ?", args: []any{*c.Min}})
			}
			if c.Max != nil {
				conditions = append(conditions, condition{expr: column + " <= ?", args: []any{*c.Max}})
			}
		case query.TimeRangeClause:
			column, ok := fieldColumns[c.Field]
			if !ok {
				return nil, errors.Errorf("unknown field %q", c.Field)
			}
			if c.From != nil {
				conditions = append(conditions, condition{expr: column + " >= ?", args: []any{c.From.UTC()}})
			}
			if c.To != nil {
				conditions = append(conditions, condition{expr: column + " <= ?", args: []any{c.To.UTC()}})
			}
		default:
			return nil, errors.Errorf("unsupported clause %T", c)
		}
	}

	return conditions, nil
}

// orderBy renders the sort with the id as a tiebreak. Records without a date sort last.
func orderBy(s query.Sort) (string, error) {
	column, ok := fieldColumns[s.Field]
	if !ok {
		return "", errors.Errorf("unknown sort field %q", s.Field)
	}

	dir := "ASC"
	if s.Direction == query.Descending {
		dir = "DESC"
	}

	return fmt.Sprintf("%s %s NULLS LAST, id %s", column, dir, dir), nil
}

func fromSalesDomain(r *entity.SalesRecord) *model.SalesRecordModel {
	var date *time.Time
	if r.HasValidDate() {
		d := r.Date.UTC()
		date = &d
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.SalesRecordModel{
		ID:                 r.ID,
		Fingerprint:        r.Fingerprint(),
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
		PhoneNumber:        r.PhoneNumber,
		Gender:             r.Gender,
		Age:                r.Age,
		CustomerRegion:     r.CustomerRegion,
		CustomerType:       r.CustomerType,
		ProductID:          r.ProductID,
		ProductName:        r.ProductName,
		Brand:              r.Brand,
		ProductCategory:    r.ProductCategory,
		Tags:               pq.StringArray(tags),
		Quantity:           r.Quantity,
		PricePerUnit:       r.PricePerUnit,
		DiscountPercentage: r.DiscountPercentage,
		TotalAmount:        r.TotalAmount,
		FinalAmount:        r.FinalAmount,
		Date:               date,
		PaymentMethod:      r.PaymentMethod,
		OrderStatus:        r.OrderStatus,
		DeliveryType:       r.DeliveryType,
		StoreID:            r.StoreID,
		StoreLocation:      r.StoreLocation,
		SalespersonID:      r.SalespersonID,
		EmployeeName:       r.EmployeeName,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func toSalesDomain(m *model.SalesRecordModel) *entity.SalesRecord {
	var date time.Time
	if m.Date != nil {
		date = m.Date.UTC()
	}

	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.SalesRecord{
		ID:                 m.ID,
		CustomerID:         m.CustomerID,
		CustomerName:       m.CustomerName,
		PhoneNumber:        m.PhoneNumber,
		Gender:             m.Gender,
		Age:                m.Age,
		CustomerRegion:     m.CustomerRegion,
		CustomerType:       m.CustomerType,
		ProductID:          m.ProductID,
		ProductName:        m.ProductName,
		Brand:              m.Brand,
		ProductCategory:    m.ProductCategory,
		Tags:               tags,
		Quantity:           m.Quantity,
		PricePerUnit:       m.PricePerUnit,
		DiscountPercentage: m.DiscountPercentage,
		TotalAmount:        m.TotalAmount,
		FinalAmount:        m.FinalAmount,
		Date:               date,
		PaymentMethod:      m.PaymentMethod,
		OrderStatus:        m.OrderStatus,
		DeliveryType:       m.DeliveryType,
		StoreID:            m.StoreID,
		StoreLocation:      m.StoreLocation,
		SalespersonID:      m.SalespersonID,
		EmployeeName:       m.EmployeeName,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
