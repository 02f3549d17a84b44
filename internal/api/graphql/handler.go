package graphql

import (
	"net/http"

	gql "github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comingup/marketplace-api/internal/api/metrics"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves POST /graphql.
type Handler struct {
	schema gql.Schema
	log    zerolog.Logger
}

func NewHandler(schema gql.Schema, log zerolog.Logger) *Handler {
	return &Handler{schema: schema, log: log}
}

// Execute runs a single GraphQL operation. Resolver errors are part of the
// GraphQL response envelope, so the HTTP status is 200 for anything that
// parses as a request.
func (h *Handler) Execute(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})

	operation := req.OperationName
	if operation == "" {
		operation = "anonymous"
	}
	outcome := "ok"
	if len(result.Errors) > 0 {
		outcome = "error"
		h.log.Debug().
			Str("operation", operation).
			Int("errors", len(result.Errors)).
			Msg("graphql operation returned errors")
	}
	metrics.GraphQLOperationsTotal.WithLabelValues(operation, outcome).Inc()

	return c.JSON(http.StatusOK, result)
}
