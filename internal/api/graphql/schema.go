// Package graphql defines the marketplace schema and its resolvers. Every
// association field (Course.instructor, Course.reviews, User.enrolledCourses,
// User.wishlist, Review.user, Review.course) has its own resolver and is
// looked up only when the query selects it, so unselected fields cost no
// store round-trips.
package graphql

import (
	gql "github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

// Services bundles the use-case dependencies of the resolvers.
type Services struct {
	Auth        ports.AuthService
	Users       ports.UserService
	Courses     ports.CourseService
	Reviews     ports.ReviewService
	Enrollments ports.EnrollmentService
	Payments    ports.PaymentService
}

// Dispatcher is the interface the sendNotification resolver uses to queue
// mock deliveries.
type Dispatcher interface {
	Enqueue(n ports.Notification)
}

type schemaBuilder struct {
	svc        Services
	dispatcher Dispatcher
	log        zerolog.Logger

	userType    *gql.Object
	courseType  *gql.Object
	reviewType  *gql.Object
	authPayload *gql.Object
}

// NewSchema builds the executable schema.
func NewSchema(svc Services, dispatcher Dispatcher, log zerolog.Logger) (gql.Schema, error) {
	b := &schemaBuilder{svc: svc, dispatcher: dispatcher, log: log}
	b.buildTypes()
	return gql.NewSchema(gql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}

func (b *schemaBuilder) err(e error) error { return translate(b.log, e) }

func (b *schemaBuilder) buildTypes() {
	b.userType = gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":    &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":  &gql.Field{Type: gql.NewNonNull(gql.String)},
			"email": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"role":  &gql.Field{Type: gql.NewNonNull(gql.String)},
		},
	})

	b.courseType = gql.NewObject(gql.ObjectConfig{
		Name: "Course",
		Fields: gql.Fields{
			"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"title":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"description": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"price":       &gql.Field{Type: gql.NewNonNull(gql.Float)},
			"category":    &gql.Field{Type: gql.NewNonNull(gql.String)},
			"tags":        &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))},
			"rating":      &gql.Field{Type: gql.Float},
		},
	})

	b.reviewType = gql.NewObject(gql.ObjectConfig{
		Name: "Review",
		Fields: gql.Fields{
			"id":      &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"rating":  &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"comment": &gql.Field{Type: gql.String},
		},
	})

	b.authPayload = gql.NewObject(gql.ObjectConfig{
		Name: "AuthPayload",
		Fields: gql.Fields{
			"token": &gql.Field{Type: gql.NewNonNull(gql.String)},
		},
	})

	// Association fields are attached after construction because the types
	// reference each other.
	b.authPayload.AddFieldConfig("user", &gql.Field{
		Type: gql.NewNonNull(b.userType),
	})

	b.userType.AddFieldConfig("enrolledCourses", &gql.Field{
		Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(b.courseType))),
		Resolve: b.resolveCourseRefs(func(u *domain.User) []string { return u.EnrolledCourses }),
	})
	b.userType.AddFieldConfig("wishlist", &gql.Field{
		Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(b.courseType))),
		Resolve: b.resolveCourseRefs(func(u *domain.User) []string { return u.Wishlist }),
	})

	b.courseType.AddFieldConfig("instructor", &gql.Field{
		Type:    gql.NewNonNull(b.userType),
		Resolve: b.resolveInstructor,
	})
	b.courseType.AddFieldConfig("reviews", &gql.Field{
		Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(b.reviewType))),
		Resolve: b.resolveCourseReviews,
	})

	b.reviewType.AddFieldConfig("user", &gql.Field{
		Type:    gql.NewNonNull(b.userType),
		Resolve: b.resolveReviewUser,
	})
	b.reviewType.AddFieldConfig("course", &gql.Field{
		Type:    gql.NewNonNull(b.courseType),
		Resolve: b.resolveReviewCourse,
	})
}

// resolveCourseRefs resolves a stored course-reference set (enrollments or
// wishlist). Dangling references are filtered by the lookup.
func (b *schemaBuilder) resolveCourseRefs(refs func(*domain.User) []string) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		user, ok := p.Source.(*domain.User)
		if !ok {
			return []*domain.Course{}, nil
		}
		courses, err := b.svc.Courses.FindByIDs(p.Context, refs(user))
		if err != nil {
			return nil, b.err(err)
		}
		return courses, nil
	}
}

func (b *schemaBuilder) resolveInstructor(p gql.ResolveParams) (interface{}, error) {
	course, ok := p.Source.(*domain.Course)
	if !ok {
		return nil, nil
	}
	user, err := b.svc.Users.Lookup(p.Context, course.InstructorID)
	if err != nil {
		return nil, b.err(err)
	}
	return user, nil
}

func (b *schemaBuilder) resolveCourseReviews(p gql.ResolveParams) (interface{}, error) {
	course, ok := p.Source.(*domain.Course)
	if !ok {
		return []*domain.Review{}, nil
	}
	reviews, err := b.svc.Reviews.ForCourse(p.Context, course.ID)
	if err != nil {
		return nil, b.err(err)
	}
	return reviews, nil
}

func (b *schemaBuilder) resolveReviewUser(p gql.ResolveParams) (interface{}, error) {
	review, ok := p.Source.(*domain.Review)
	if !ok {
		return nil, nil
	}
	user, err := b.svc.Users.Lookup(p.Context, review.UserID)
	if err != nil {
		return nil, b.err(err)
	}
	return user, nil
}

func (b *schemaBuilder) resolveReviewCourse(p gql.ResolveParams) (interface{}, error) {
	review, ok := p.Source.(*domain.Review)
	if !ok {
		return nil, nil
	}
	course, err := b.svc.Courses.Get(p.Context, review.CourseID)
	if err != nil {
		return nil, b.err(err)
	}
	return course, nil
}
