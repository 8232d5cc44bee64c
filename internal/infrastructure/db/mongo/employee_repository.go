package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qalab/employee-directory/internal/core/domain"
)

const (
	collectionEmployees = "employees"
	stagingSuffix       = "_staging"
)

// employeeDocument keeps the collection order of the whole-collection model
// through an explicit position field.
type employeeDocument struct {
	Position int                   `bson:"position"`
	ID       string                `bson:"id"`
	Name     string                `bson:"name"`
	Email    string                `bson:"email"`
	Dept     string                `bson:"dept"`
	Role     string                `bson:"role"`
	Status   domain.EmployeeStatus `bson:"status"`
}

// EmployeeRepository implements ports.EmployeeRepository on a MongoDB
// collection. Every save replaces the collection contents.
type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database, collection string) *EmployeeRepository {
	if collection == "" {
		collection = collectionEmployees
	}
	return &EmployeeRepository{col: db.Collection(collection)}
}

// LoadAll returns every employee in stored order.
func (r *EmployeeRepository) LoadAll(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cur.Close(ctx)

	var docs []employeeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]domain.Employee, 0, len(docs))
	for _, d := range docs {
		employees = append(employees, domain.Employee{
			ID:     d.ID,
			Name:   d.Name,
			Email:  d.Email,
			Dept:   d.Dept,
			Role:   d.Role,
			Status: d.Status,
		})
	}
	return employees, nil
}

// SaveAll replaces the stored collection with employees. The new contents
// are written to a staging collection first and renamed over the target, so
// a failed write leaves the previous contents in place.
func (r *EmployeeRepository) SaveAll(ctx context.Context, employees []domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	db := r.col.Database()
	staging := db.Collection(r.col.Name() + stagingSuffix)

	if err := staging.Drop(ctx); err != nil {
		return fmt.Errorf("drop staging employees: %w", err)
	}
	// Creating the indexes also creates the collection, which the rename
	// needs when employees is empty.
	if _, err := staging.Indexes().CreateMany(ctx, employeeIndexes()); err != nil {
		return fmt.Errorf("index staging employees: %w", err)
	}

	if len(employees) > 0 {
		docs := make([]interface{}, 0, len(employees))
		for i, e := range employees {
			docs = append(docs, employeeDocument{
				Position: i,
				ID:       e.ID,
				Name:     e.Name,
				Email:    e.Email,
				Dept:     e.Dept,
				Role:     e.Role,
				Status:   e.Status,
			})
		}
		if _, err := staging.InsertMany(ctx, docs); err != nil {
			_ = staging.Drop(ctx)
			return fmt.Errorf("insert employees: %w", err)
		}
	}

	rename := bson.D{
		{Key: "renameCollection", Value: db.Name() + "." + staging.Name()},
		{Key: "to", Value: db.Name() + "." + r.col.Name()},
		{Key: "dropTarget", Value: true},
	}
	if err := db.Client().Database("admin").RunCommand(ctx, rename).Err(); err != nil {
		_ = staging.Drop(ctx)
		return fmt.Errorf("swap employees: %w", err)
	}
	return nil
}

// Bootstrap inserts seed when the collection holds no documents.
func (r *EmployeeRepository) Bootstrap(ctx context.Context, seed []domain.Employee) (bool, error) {
	countCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(countCtx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count employees: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if err := r.SaveAll(ctx, seed); err != nil {
		return false, err
	}
	return true, nil
}

func employeeIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "position", Value: 1}}},
		{Keys: bson.D{{Key: "id", Value: 1}}},
	}
}

// EnsureIndexes creates the lookup indexes on the employees collection.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, employeeIndexes())
	return err
}
