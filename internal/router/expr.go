// Package router binds the expression-evaluation endpoints to an echo
// instance.
package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booltab/booltab/internal/ast"
	"github.com/booltab/booltab/internal/diag"
	"github.com/booltab/booltab/internal/expr"
	"github.com/booltab/booltab/internal/render"
	"github.com/booltab/booltab/pkg/stringsutil"
)

type ExprRouter struct {
	e *echo.Echo

	// maxIdentifiers bounds truth-table requests; the server cannot ask for
	// confirmation the way the CLI does, so oversized requests are refused.
	maxIdentifiers int
}

func NewExprRouter(e *echo.Echo, maxIdentifiers int) *ExprRouter {
	return &ExprRouter{
		e:              e,
		maxIdentifiers: maxIdentifiers,
	}
}

func (r *ExprRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/table", r.tableHandler)
	g.POST("/ast", r.astHandler)
}

type evaluateRequest struct {
	Expression string  `json:"expression"`
	Assignment *uint64 `json:"assignment,omitempty"`
}

type evaluateResponse struct {
	Result bool            `json:"result"`
	Inputs map[string]bool `json:"inputs,omitempty"`
}

// evaluateHandler evaluates one expression. Without an assignment mask the
// expression must be variable-free; with one, bit i of the mask is the value
// of the i-th identifier in ascending order.
func (r *ExprRouter) evaluateHandler(c echo.Context) error {
	var req evaluateRequest
	if msg, ok := bindExpression(c, &req, &req.Expression); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	if req.Assignment == nil {
		result, err := expr.EvaluateConst(req.Expression)
		if err != nil {
			return pipelineError(c, err)
		}
		return c.JSON(http.StatusOK, evaluateResponse{Result: result})
	}

	res, err := expr.EvaluatePass(req.Expression, *req.Assignment)
	if err != nil {
		return pipelineError(c, err)
	}
	return c.JSON(http.StatusOK, evaluateResponse{
		Result: res.Result,
		Inputs: stateStrings(res.States),
	})
}

type tableRequest struct {
	Expression string `json:"expression"`
	Filter     string `json:"filter,omitempty"` // "", "all", "true" or "false"
}

type tableRow struct {
	Inputs map[string]bool `json:"inputs"`
	Result bool            `json:"result"`
}

type tableResponse struct {
	Identifiers []string   `json:"identifiers"`
	Rows        []tableRow `json:"rows"`
}

func (r *ExprRouter) tableHandler(c echo.Context) error {
	var req tableRequest
	if msg, ok := bindExpression(c, &req, &req.Expression); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	filter, err := parseFilter(req.Filter)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}

	ev, err := expr.Compile(req.Expression, true)
	if err != nil {
		return pipelineError(c, err)
	}

	idents := ev.Identifiers()
	if len(idents) > r.maxIdentifiers {
		return c.JSON(http.StatusUnprocessableEntity, errorBody(fmt.Errorf(
			"expression has %d identifiers; the table endpoint accepts at most %d (%d rows)",
			len(idents), r.maxIdentifiers, uint64(1)<<r.maxIdentifiers)))
	}

	resp := tableResponse{
		Identifiers: stringsutil.RuneStrings(idents),
		Rows:        make([]tableRow, 0, uint64(1)<<len(idents)),
	}
	for row := range ev.Rows() {
		if !filter.Keep(row.Result) {
			continue
		}
		resp.Rows = append(resp.Rows, tableRow{
			Inputs: stateStrings(row.States),
			Result: row.Result,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

type astRequest struct {
	Expression string `json:"expression"`
	Pretty     bool   `json:"pretty,omitempty"`
	Extended   bool   `json:"extended,omitempty"`
}

type astResponse struct {
	Nodes int    `json:"nodes"`
	Tree  string `json:"tree"`
}

func (r *ExprRouter) astHandler(c echo.Context) error {
	var req astRequest
	if msg, ok := bindExpression(c, &req, &req.Expression); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	root, err := expr.Parse(req.Expression)
	if err != nil {
		return pipelineError(c, err)
	}

	var tree string
	if req.Pretty {
		tree = render.CompactTree(root, req.Extended)
	} else {
		tree = render.GridTree(root, req.Extended)
	}
	return c.JSON(http.StatusOK, astResponse{
		Nodes: ast.NodeCount(root),
		Tree:  tree,
	})
}

// bindExpression decodes the request body and checks the expression field.
func bindExpression(c echo.Context, req any, expression *string) (string, bool) {
	if err := c.Bind(req); err != nil {
		return "invalid request body", false
	}
	if *expression == "" {
		return "expression is required", false
	}
	return "", true
}

// pipelineError maps lex and parse diagnostics to 400 with the full
// caret-marker text; anything else is a 500.
func pipelineError(c echo.Context, err error) error {
	var d *diag.Error
	if errors.As(err, &d) {
		return c.JSON(http.StatusBadRequest, errorBody(d))
	}
	return c.JSON(http.StatusInternalServerError, errorBody(err))
}

func parseFilter(s string) (render.RowFilter, error) {
	switch s {
	case "", "all":
		return render.AllRows, nil
	case "true":
		return render.TrueRows, nil
	case "false":
		return render.FalseRows, nil
	default:
		return render.AllRows, fmt.Errorf("invalid filter %q: must be all, true or false", s)
	}
}

func stateStrings(states map[rune]bool) map[string]bool {
	out := make(map[string]bool, len(states))
	for c, v := range states {
		out[string(c)] = v
	}
	return out
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}
