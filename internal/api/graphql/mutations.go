package graphql

import (
	"time"

	gql "github.com/graphql-go/graphql"

	"github.com/comingup/marketplace-api/internal/api/metrics"
	"github.com/comingup/marketplace-api/internal/api/middleware"
	"github.com/comingup/marketplace-api/internal/core/auth"
	"github.com/comingup/marketplace-api/internal/core/domain"
	"github.com/comingup/marketplace-api/internal/core/ports"
)

func (b *schemaBuilder) mutationType() *gql.Object {
	fields := gql.Fields{}
	b.authMutations(fields)
	b.courseMutations(fields)
	b.enrollmentMutations(fields)
	b.reviewMutations(fields)
	b.userMutations(fields)
	b.extraMutations(fields)
	return gql.NewObject(gql.ObjectConfig{Name: "Mutation", Fields: fields})
}

func (b *schemaBuilder) authMutations(fields gql.Fields) {
	fields["signup"] = &gql.Field{
		Type: gql.NewNonNull(b.authPayload),
		Args: gql.FieldConfigArgument{
			"name":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			payload, err := b.svc.Auth.Signup(p.Context, ports.SignupInput{
				Name:     stringArg(p, "name"),
				Email:    stringArg(p, "email"),
				Password: stringArg(p, "password"),
			})
			if err != nil {
				return nil, b.err(err)
			}
			return payload, nil
		},
	}

	fields["login"] = &gql.Field{
		Type: gql.NewNonNull(b.authPayload),
		Args: gql.FieldConfigArgument{
			"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			payload, err := b.svc.Auth.Login(p.Context, stringArg(p, "email"), stringArg(p, "password"))
			if err != nil {
				metrics.AuthLoginsTotal.WithLabelValues("denied").Inc()
				return nil, b.err(err)
			}
			metrics.AuthLoginsTotal.WithLabelValues("ok").Inc()
			return payload, nil
		},
	}
}

func (b *schemaBuilder) courseMutations(fields gql.Fields) {
	fields["createCourse"] = &gql.Field{
		Type: gql.NewNonNull(b.courseType),
		Args: gql.FieldConfigArgument{
			"title":       &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"description": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"price":       &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Float)},
			"category":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"tags":        &gql.ArgumentConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			course, err := b.svc.Courses.Create(p.Context, middleware.ActorFrom(p.Context), ports.CreateCourseInput{
				Title:       stringArg(p, "title"),
				Description: stringArg(p, "description"),
				Price:       floatArg(p, "price"),
				Category:    stringArg(p, "category"),
				Tags:        stringListArg(p, "tags"),
			})
			if err != nil {
				return nil, b.err(err)
			}
			return course, nil
		},
	}

	fields["updateCourse"] = &gql.Field{
		Type: gql.NewNonNull(b.courseType),
		Args: gql.FieldConfigArgument{
			"id":          &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
			"title":       &gql.ArgumentConfig{Type: gql.String},
			"description": &gql.ArgumentConfig{Type: gql.String},
			"price":       &gql.ArgumentConfig{Type: gql.Float},
			"category":    &gql.ArgumentConfig{Type: gql.String},
			"tags":        &gql.ArgumentConfig{Type: gql.NewList(gql.NewNonNull(gql.String))},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			patch := ports.CoursePatch{
				Title:       optString(p, "title"),
				Description: optString(p, "description"),
				Price:       optFloat(p, "price"),
				Category:    optString(p, "category"),
				Tags:        optStringList(p, "tags"),
			}
			course, err := b.svc.Courses.Update(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id"), patch)
			if err != nil {
				return nil, b.err(err)
			}
			return course, nil
		},
	}

	fields["deleteCourse"] = &gql.Field{
		Type: gql.NewNonNull(gql.Boolean),
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := b.svc.Courses.Delete(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id")); err != nil {
				return nil, b.err(err)
			}
			return true, nil
		},
	}
}

func (b *schemaBuilder) enrollmentMutations(fields gql.Fields) {
	fields["enroll"] = &gql.Field{
		Type: gql.NewNonNull(gql.String),
		Args: gql.FieldConfigArgument{
			"courseId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := b.svc.Enrollments.Enroll(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "courseId")); err != nil {
				return nil, b.err(err)
			}
			return "Enrolled successfully", nil
		},
	}

	fields["addToWishlist"] = &gql.Field{
		Type: gql.NewNonNull(gql.Boolean),
		Args: gql.FieldConfigArgument{
			"courseId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := b.svc.Enrollments.AddToWishlist(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "courseId")); err != nil {
				return nil, b.err(err)
			}
			return true, nil
		},
	}

	fields["removeFromWishlist"] = &gql.Field{
		Type: gql.NewNonNull(gql.Boolean),
		Args: gql.FieldConfigArgument{
			"courseId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := b.svc.Enrollments.RemoveFromWishlist(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "courseId")); err != nil {
				return nil, b.err(err)
			}
			return true, nil
		},
	}
}

func (b *schemaBuilder) reviewMutations(fields gql.Fields) {
	fields["addReview"] = &gql.Field{
		Type: gql.NewNonNull(b.reviewType),
		Args: gql.FieldConfigArgument{
			"courseId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
			"rating":   &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
			"comment":  &gql.ArgumentConfig{Type: gql.String},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			review, err := b.svc.Reviews.Add(p.Context, middleware.ActorFrom(p.Context), ports.AddReviewInput{
				CourseID: stringArg(p, "courseId"),
				Rating:   intArg(p, "rating"),
				Comment:  stringArg(p, "comment"),
			})
			if err != nil {
				return nil, b.err(err)
			}
			return review, nil
		},
	}

	fields["updateReview"] = &gql.Field{
		Type: gql.NewNonNull(b.reviewType),
		Args: gql.FieldConfigArgument{
			"id":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
			"rating":  &gql.ArgumentConfig{Type: gql.Int},
			"comment": &gql.ArgumentConfig{Type: gql.String},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			patch := ports.ReviewPatch{
				Rating:  optInt(p, "rating"),
				Comment: optString(p, "comment"),
			}
			review, err := b.svc.Reviews.Update(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id"), patch)
			if err != nil {
				return nil, b.err(err)
			}
			return review, nil
		},
	}

	fields["deleteReview"] = &gql.Field{
		Type: gql.NewNonNull(gql.Boolean),
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := b.svc.Reviews.Delete(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id")); err != nil {
				return nil, b.err(err)
			}
			return true, nil
		},
	}
}

func (b *schemaBuilder) userMutations(fields gql.Fields) {
	fields["createUser"] = &gql.Field{
		Type: gql.NewNonNull(b.userType),
		Args: gql.FieldConfigArgument{
			"name":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
			"role":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			user, err := b.svc.Users.Create(p.Context, middleware.ActorFrom(p.Context), ports.CreateUserInput{
				Name:     stringArg(p, "name"),
				Email:    stringArg(p, "email"),
				Password: stringArg(p, "password"),
				Role:     domain.Role(stringArg(p, "role")),
			})
			if err != nil {
				return nil, b.err(err)
			}
			return user, nil
		},
	}

	fields["updateUser"] = &gql.Field{
		Type: gql.NewNonNull(b.userType),
		Args: gql.FieldConfigArgument{
			"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
			"name":  &gql.ArgumentConfig{Type: gql.String},
			"email": &gql.ArgumentConfig{Type: gql.String},
			"role":  &gql.ArgumentConfig{Type: gql.String},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			patch := ports.UserPatch{
				Name:  optString(p, "name"),
				Email: optString(p, "email"),
			}
			if role := optString(p, "role"); role != nil {
				r := domain.Role(*role)
				patch.Role = &r
			}
			user, err := b.svc.Users.Update(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id"), patch)
			if err != nil {
				return nil, b.err(err)
			}
			return user, nil
		},
	}

	fields["deleteUser"] = &gql.Field{
		Type: gql.NewNonNull(gql.Boolean),
		Args: gql.FieldConfigArgument{
			"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			if err := b.svc.Users.Delete(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id")); err != nil {
				return nil, b.err(err)
			}
			return true, nil
		},
	}
}

func (b *schemaBuilder) extraMutations(fields gql.Fields) {
	fields["processPayment"] = &gql.Field{
		Type: gql.NewNonNull(gql.String),
		Args: gql.FieldConfigArgument{
			"courseId":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
			"paymentMethod": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			confirmation, err := b.svc.Payments.Process(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "courseId"), stringArg(p, "paymentMethod"))
			if err != nil {
				return nil, b.err(err)
			}
			return confirmation, nil
		},
	}

	fields["sendNotification"] = &gql.Field{
		Type: gql.NewNonNull(gql.Boolean),
		Args: gql.FieldConfigArgument{
			"userId":  &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
			"message": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		},
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			actor := middleware.ActorFrom(p.Context)
			if err := auth.Authorize(actor, auth.ActionSendNotification, nil); err != nil {
				return nil, b.err(err)
			}
			b.dispatcher.Enqueue(ports.Notification{
				UserID:   stringArg(p, "userId"),
				Message:  stringArg(p, "message"),
				QueuedAt: time.Now().UTC(),
			})
			return true, nil
		},
	}
}
