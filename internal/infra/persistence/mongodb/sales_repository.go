package mongodb

import (
	"context"
	"time"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/query"
	"saleslens/internal/domain/repository"
	"saleslens/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	duplicateKeyCode       = 11000
	documentValidationCode = 121
)

// salesDocument is the BSON shape of a record. Field names follow the JSON API.
type salesDocument struct {
	ID          string `bson:"_id"`
	Fingerprint string `bson:"fingerprint"`

	CustomerID     string `bson:"customerId"`
	CustomerName   string `bson:"customerName"`
	PhoneNumber    string `bson:"phoneNumber"`
	Gender         string `bson:"gender"`
	Age            int    `bson:"age"`
	CustomerRegion string `bson:"customerRegion"`
	CustomerType   string `bson:"customerType"`

	ProductID       string   `bson:"productId"`
	ProductName     string   `bson:"productName"`
	Brand           string   `bson:"brand"`
	ProductCategory string   `bson:"productCategory"`
	Tags            []string `bson:"tags"`

	Quantity           float64 `bson:"quantity"`
	PricePerUnit       float64 `bson:"pricePerUnit"`
	DiscountPercentage float64 `bson:"discountPercentage"`
	TotalAmount        float64 `bson:"totalAmount"`
	FinalAmount        float64 `bson:"finalAmount"`

	Date          *time.Time `bson:"date"`
	PaymentMethod string     `bson:"paymentMethod"`
	OrderStatus   string     `bson:"orderStatus"`
	DeliveryType  string     `bson:"deliveryType"`
	StoreID       string     `bson:"storeId"`
	StoreLocation string     `bson:"storeLocation"`
	SalespersonID string     `bson:"salespersonId"`
	EmployeeName  string     `bson:"employeeName"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type salesRepository struct {
	coll *mongo.Collection
}

// NewSalesRepository is the constructor for the MongoDB sales repository.
func NewSalesRepository(coll *mongo.Collection) repository.SalesRepository {
	return &salesRepository{coll: coll}
}

func (repo *salesRepository) Find(ctx context.Context, q query.Query, page repository.Page) ([]*entity.SalesRecord, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(buildSort(page.Sort)).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sales records")
	}
	defer cursor.Close(ctx)

	var docs []salesDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode sales records")
	}

	records := make([]*entity.SalesRecord, 0, len(docs))
	for i := range docs {
		record, err := toSalesDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (repo *salesRepository) Count(ctx context.Context, q query.Query) (int64, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return 0, err
	}

	total, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count sales records")
	}

	return total, nil
}

// Distinct relies on the server unwinding array fields, so tags need no special case.
func (repo *salesRepository) Distinct(ctx context.Context, field query.Field) ([]string, error) {
	raw, err := repo.coll.Distinct(ctx, string(field), bson.D{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list distinct %s", field)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}

	return values, nil
}

func (repo *salesRepository) Summarize(ctx context.Context) (*entity.Statistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$finalAmount"}}},
			{Key: "totalQuantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			{Key: "averageOrderValue", Value: bson.D{{Key: "$avg", Value: "$finalAmount"}}},
			{Key: "totalTransactions", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize sales records")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalSales        float64 `bson:"totalSales"`
		TotalQuantity     float64 `bson:"totalQuantity"`
		AverageOrderValue float64 `bson:"averageOrderValue"`
		TotalTransactions int64   `bson:"totalTransactions"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode sales summary")
	}

	// An empty collection yields no group at all.
	if len(rows) == 0 {
		return &entity.Statistics{}, nil
	}

	return &entity.Statistics{
		TotalSales:        rows[0].TotalSales,
		TotalQuantity:     rows[0].TotalQuantity,
		AverageOrderValue: rows[0].AverageOrderValue,
		TotalTransactions: rows[0].TotalTransactions,
	}, nil
}

// InsertMany performs an unordered insert so one bad document does not stop the rest.
func (repo *salesRepository) InsertMany(ctx context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
	if len(records) == 0 {
		return []repository.InsertOutcome{}, nil
	}

	docs := make([]any, 0, len(records))
	for _, r := range records {
		docs = append(docs, fromSalesDomain(r))
	}

	_, err := repo.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))

	return insertOutcomes(records, err)
}

func (repo *salesRepository) InsertOne(ctx context.Context, record *entity.SalesRecord) error {
	if _, err := repo.coll.InsertOne(ctx, fromSalesDomain(record)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateSale
		}

		return errors.Wrap(err, "failed to create sales record")
	}

	return nil
}

// insertOutcomes maps an unordered InsertMany error onto per-record results.
// Only per-document write errors are attributable; anything else fails the call.
func insertOutcomes(records []*entity.SalesRecord, err error) ([]repository.InsertOutcome, error) {
	outcomes := make([]repository.InsertOutcome, len(records))
	for i, r := range records {
		outcomes[i] = repository.InsertOutcome{RecordID: r.ID, Status: repository.Inserted}
	}
	if err == nil {
		return outcomes, nil
	}

	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return nil, errors.Wrap(err, "failed to insert sales records")
	}

	for _, we := range bwe.WriteErrors {
		if we.Index < 0 || we.Index >= len(records) {
			return nil, errors.Wrapf(err, "write error index %d out of range", we.Index)
		}
		reason := repository.ReasonOther
		switch we.Code {
		case duplicateKeyCode:
			reason = repository.ReasonDuplicate
		case documentValidationCode:
			reason = repository.ReasonInvalid
		}
		outcomes[we.Index] = repository.InsertOutcome{
			RecordID: records[we.Index].ID,
			Status:   repository.Rejected,
			Reason:   reason,
			Detail:   we.Message,
		}
	}

	return outcomes, nil
}

// buildFilter translates a query into a BSON filter document.
func buildFilter(q query.Query) (bson.D, error) {
	filter := bson.D{}

	for _, c := range q.Clauses {
		switch c := c.(type) {
		case query.TextClause:
			filter = append(filter, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: c.Search}}})
		case query.InClause:
			filter = append(filter, bson.E{Key: string(c.Field), Value: bson.D{{Key: "$in", Value: c.Values}}})
		case query.IntRangeClause:
			bounds := bson.D{}
			if c.Min != nil {
				bounds = append(bounds, bson.E{Key: "$gte", Value: *c.Min})
			}
			if c.Max != nil {
				bounds = append(bounds, bson.E{Key: "$lte", Value: *c.Max})
			}
			filter = append(filter, bson.E{Key: string(c.Field), Value: bounds})
		case query.TimeRangeClause:
			bounds := bson.D{}
			if c.From != nil {
				bounds = append(bounds, bson.E{Key: "$gte", Value: c.From.UTC()})
			}
			if c.To != nil {
				bounds = append(bounds, bson.E{Key: "$lte", Value: c.To.UTC()})
			}
			filter = append(filter, bson.E{Key: string(c.Field), Value: bounds})
		default:
			return nil, errors.Errorf("unsupported clause %T", c)
		}
	}

	return filter, nil
}

func buildSort(s query.Sort) bson.D {
	dir := int(s.Direction)

	return bson.D{{Key: string(s.Field), Value: dir}, {Key: "_id", Value: dir}}
}

func fromSalesDomain(r *entity.SalesRecord) *salesDocument {
	var date *time.Time
	if r.HasValidDate() {
		d := r.Date.UTC()
		date = &d
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &salesDocument{
		ID:                 r.ID.String(),
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
		Tags:               tags,
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
		CreatedAt:          r.CreatedAt.UTC(),
		UpdatedAt:          r.UpdatedAt.UTC(),
	}
}

func toSalesDomain(d *salesDocument) (*entity.SalesRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid record id %q", d.ID)
	}

	var date time.Time
	if d.Date != nil {
		date = d.Date.UTC()
	}

	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.SalesRecord{
		ID:                 id,
		CustomerID:         d.CustomerID,
		CustomerName:       d.CustomerName,
		PhoneNumber:        d.PhoneNumber,
		Gender:             d.Gender,
		Age:                d.Age,
		CustomerRegion:     d.CustomerRegion,
		CustomerType:       d.CustomerType,
		ProductID:          d.ProductID,
		ProductName:        d.ProductName,
		Brand:              d.Brand,
		ProductCategory:    d.ProductCategory,
		Tags:               tags,
		Quantity:           d.Quantity,
		PricePerUnit:       d.PricePerUnit,
		DiscountPercentage: d.DiscountPercentage,
		TotalAmount:        d.TotalAmount,
		FinalAmount:        d.FinalAmount,
		Date:               date,
		PaymentMethod:      d.PaymentMethod,
		OrderStatus:        d.OrderStatus,
		DeliveryType:       d.DeliveryType,
		StoreID:            d.StoreID,
		StoreLocation:      d.StoreLocation,
		SalespersonID:      d.SalespersonID,
		EmployeeName:       d.EmployeeName,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}, nil
}
