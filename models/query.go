package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Operator is a comparison operator accepted by [Query.Where].
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpIn             Operator = "in"
	OpArrayContains  Operator = "array-contains"
)

// Direction is an ordering direction accepted by [Query.OrderBy].
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter is a single where-clause of a query.
type Filter struct {
	Field string   `json:"field"`
	Op    Operator `json:"op"`
	Value any      `json:"value"`
}

// Order is a single order-by clause of a query.
type Order struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Cursor positions a query right after a given document. Values hold the
// document's values for every order-by field, in order.
type Cursor struct {
	DocID  string `json:"doc_id"`
	Values []any  `json:"values,omitempty"`
}

// Query is an immutable description of a collection query. Every builder
// method returns a new Query and leaves the receiver untouched, so a Query
// may be shared and extended freely.
type Query struct {
	Collection string   `json:"collection"`
	Filters    []Filter `json:"filters,omitempty"`
	Orders     []Order  `json:"orders,omitempty"`
	Max        int      `json:"limit,omitempty"`
	After      *Cursor  `json:"start_after,omitempty"`
}

// Collection starts a query over all documents of the collection at path.
func Collection(path string) Query {
	return Query{Collection: path}
}

// Where adds a filter clause.
func (q Query) Where(field string, op Operator, value any) Query {
	out := q.clone()
	out.Filters = append(out.Filters, Filter{Field: field, Op: op, Value: value})
	return out
}

// OrderBy adds an order clause. An empty direction means ascending.
func (q Query) OrderBy(field string, dir Direction) Query {
	if dir == "" {
		dir = Asc
	}
	out := q.clone()
	out.Orders = append(out.Orders, Order{Field: field, Direction: dir})
	return out
}

// Limit caps the number of returned documents. n <= 0 removes the cap.
func (q Query) Limit(n int) Query {
	out := q.clone()
	out.Max = max(n, 0)
	return out
}

// StartAfter continues the query after the position described by c.
func (q Query) StartAfter(c Cursor) Query {
	out := q.clone()
	cur := Cursor{DocID: c.DocID, Values: slices.Clone(c.Values)}
	out.After = &cur
	return out
}

// CursorFor builds the continuation cursor positioned at doc for this query's
// order clauses.
func (q Query) CursorFor(doc Document) Cursor {
	values := make([]any, 0, len(q.Orders))
	for _, o := range q.Orders {
		values = append(values, doc.Data[o.Field])
	}
	return Cursor{DocID: doc.ID, Values: values}
}

// Key returns the identity of the query: two queries with equal keys read the
// same page of the same collection.
func (q Query) Key() string {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Sprintf("%#v", q)
	}
	return string(b)
}

func (q Query) clone() Query {
	out := Query{
		Collection: q.Collection,
		Filters:    slices.Clone(q.Filters),
		Orders:     slices.Clone(q.Orders),
		Max:        q.Max,
	}
	if q.After != nil {
		cur := Cursor{DocID: q.After.DocID, Values: slices.Clone(q.After.Values)}
		out.After = &cur
	}
	return out
}
