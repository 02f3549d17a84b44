package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

const collectionCourses = "courses"

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

type courseDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Title        string               `bson:"title"`
	Description  string               `bson:"description"`
	Price        float64              `bson:"price"`
	InstructorID primitive.ObjectID   `bson:"instructor"`
	Category     string               `bson:"category"`
	Tags         []string             `bson:"tags"`
	Rating       float64              `bson:"rating"`
	ReviewIDs    []primitive.ObjectID `bson:"reviews"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func (d *courseDoc) toDomain() *domain.Course {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Course{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Price:        d.Price,
		InstructorID: d.InstructorID.Hex(),
		Category:     d.Category,
		Tags:         tags,
		Rating:       d.Rating,
		ReviewIDs:    hexSlice(d.ReviewIDs),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	iid, ok := oidFromHex(course.InstructorID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := courseDoc{
		Title:        course.Title,
		Description:  course.Description,
		Price:        course.Price,
		InstructorID: iid,
		Category:     course.Category,
		Tags:         course.Tags,
		Rating:       course.Rating,
		ReviewIDs:    []primitive.ObjectID{},
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *course
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.ReviewIDs = []string{}
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc courseDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*domain.Course, error) {
	return r.find(ctx, bson.M{})
}

func (r *CourseRepository) FindByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error) {
	oid, ok := oidFromHex(instructorID)
	if !ok {
		return []*domain.Course{}, nil
	}
	return r.find(ctx, bson.M{"instructor": oid})
}

// FindByIDs resolves a reference set. Dangling and malformed ids simply
// produce no rows, which is the read-time filtering the services rely on.
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error) {
	oids := oidsFromHex(ids)
	if len(oids) == 0 {
		return []*domain.Course{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *CourseRepository) find(ctx context.Context, filter bson.M) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []*domain.Course{}
	for cur.Next(ctx) {
		var doc courseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		courses = append(courses, doc.toDomain())
	}
	return courses, cur.Err()
}

// Update applies a partial update: only non-nil patch fields are written.
// The instructor reference is deliberately not updatable.
func (r *CourseRepository) Update(ctx context.Context, id string, patch ports.CoursePatch) (*domain.Course, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc courseDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, ok := oidFromHex(id)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) PushReview(ctx context.Context, courseID, reviewID string) error {
	cid, ok := oidFromHex(courseID)
	if !ok {
		return domain.ErrCourseNotFound
	}
	rid, ok := oidFromHex(reviewID)
	if !ok {
		return domain.ErrReviewNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": cid}, bson.M{"$addToSet": bson.M{"reviews": rid}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) PullReview(ctx context.Context, courseID, reviewID string) error {
	cid, ok := oidFromHex(courseID)
	if !ok {
		return domain.ErrCourseNotFound
	}
	rid, ok := oidFromHex(reviewID)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": cid}, bson.M{"$pull": bson.M{"reviews": rid}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// EnsureIndexes creates the instructor lookup index.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "instructor", Value: 1}},
	})
	return err
}
