package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/comingup/marketplace-api/internal/api/middleware"
)

func (b *schemaBuilder) queryType() *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			// Public catalog browsing.
			"courses": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.courseType))),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					courses, err := b.svc.Courses.List(p.Context)
					if err != nil {
						return nil, b.err(err)
					}
					return courses, nil
				},
			},
			"course": &gql.Field{
				Type: b.courseType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					course, err := b.svc.Courses.Get(p.Context, stringArg(p, "id"))
					if err != nil {
						return nil, b.err(err)
					}
					return course, nil
				},
			},

			// me returns the acting user, or null for anonymous callers.
			"me": &gql.Field{
				Type: b.userType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					actor := middleware.ActorFrom(p.Context)
					if actor == nil {
						return nil, nil
					}
					return actor, nil
				},
			},

			// Admin only.
			"users": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.userType))),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					users, err := b.svc.Users.List(p.Context, middleware.ActorFrom(p.Context))
					if err != nil {
						return nil, b.err(err)
					}
					return users, nil
				},
			},
			"user": &gql.Field{
				Type: b.userType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := b.svc.Users.Get(p.Context, middleware.ActorFrom(p.Context), stringArg(p, "id"))
					if err != nil {
						return nil, b.err(err)
					}
					return user, nil
				},
			},

			// Instructor only.
			"myCourses": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.courseType))),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					courses, err := b.svc.Courses.MyCourses(p.Context, middleware.ActorFrom(p.Context))
					if err != nil {
						return nil, b.err(err)
					}
					return courses, nil
				},
			},
		},
	})
}
