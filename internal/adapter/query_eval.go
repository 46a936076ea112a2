package adapter

import (
	"cmp"
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-sync/models"
)

// valueClass orders values of different kinds: null < bool < number <
// timestamp < string < array < map.
type valueClass int

const (
	classNull valueClass = iota
	classBool
	classNumber
	classTime
	classString
	classArray
	classMap
	classOther
)

func classify(v any) (valueClass, any) {
	switch val := v.(type) {
	case nil:
		return classNull, nil
	case bool:
		return classBool, val
	case int:
		return classNumber, float64(val)
	case int8:
		return classNumber, float64(val)
	case int16:
		return classNumber, float64(val)
	case int32:
		return classNumber, float64(val)
	case int64:
		return classNumber, float64(val)
	case uint:
		return classNumber, float64(val)
	case uint8:
		return classNumber, float64(val)
	case uint16:
		return classNumber, float64(val)
	case uint32:
		return classNumber, float64(val)
	case uint64:
		return classNumber, float64(val)
	case float32:
		return classNumber, float64(val)
	case float64:
		return classNumber, val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return classString, val.String()
		}
		return classNumber, f
	case time.Time:
		return classTime, val
	case string:
		return classString, val
	case []any:
		return classArray, val
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return classArray, out
	case map[string]any, models.Item:
		return classMap, val
	default:
		return classOther, val
	}
}

// compareValues orders two JSON-like values.
func compareValues(a, b any) int {
	ca, va := classify(a)
	cb, vb := classify(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	switch ca {
	case classBool:
		x, y := va.(bool), vb.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case classNumber:
		return cmp.Compare(va.(float64), vb.(float64))
	case classTime:
		return va.(time.Time).Compare(vb.(time.Time))
	case classString:
		return strings.Compare(va.(string), vb.(string))
	case classArray:
		x, y := va.([]any), vb.([]any)
		for i := 0; i < len(x) && i < len(y); i++ {
			if c := compareValues(x[i], y[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(x), len(y))
	default:
		return 0
	}
}

func equalValues(a, b any) bool {
	ca, va := classify(a)
	cb, vb := classify(b)
	if ca != cb {
		return false
	}
	if ca == classMap || ca == classOther {
		return reflect.DeepEqual(va, vb)
	}
	return compareValues(a, b) == 0
}

// fieldValue resolves a dot-delimited field path inside data.
func fieldValue(data models.Item, field string) (any, bool) {
	var node any = data
	for _, seg := range strings.Split(field, ".") {
		m, ok := models.AsItem(node)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// matchFilter reports whether data satisfies f. Documents without the
// filtered field never match.
func matchFilter(data models.Item, f models.Filter) bool {
	v, ok := fieldValue(data, f.Field)
	if !ok {
		return false
	}

	switch f.Op {
	case models.OpEqual:
		return equalValues(v, f.Value)
	case models.OpNotEqual:
		return !equalValues(v, f.Value)
	case models.OpLess, models.OpLessOrEqual, models.OpGreater, models.OpGreaterOrEqual:
		cv, _ := classify(v)
		cf, _ := classify(f.Value)
		if cv != cf {
			return false
		}
		c := compareValues(v, f.Value)
		switch f.Op {
		case models.OpLess:
			return c < 0
		case models.OpLessOrEqual:
			return c <= 0
		case models.OpGreater:
			return c > 0
		default:
			return c >= 0
		}
	case models.OpIn:
		class, list := classify(f.Value)
		if class != classArray {
			return false
		}
		return slices.ContainsFunc(list.([]any), func(el any) bool { return equalValues(v, el) })
	case models.OpArrayContains:
		class, list := classify(v)
		if class != classArray {
			return false
		}
		return slices.ContainsFunc(list.([]any), func(el any) bool { return equalValues(el, f.Value) })
	default:
		return false
	}
}

// matches reports whether doc passes every filter and carries every ordered
// field.
func matches(doc models.Document, q models.Query) bool {
	for _, f := range q.Filters {
		if !matchFilter(doc.Data, f) {
			return false
		}
	}
	for _, o := range q.Orders {
		if _, ok := fieldValue(doc.Data, o.Field); !ok {
			return false
		}
	}
	return true
}

func compareDocs(a, b models.Document, orders []models.Order) int {
	for _, o := range orders {
		av, _ := fieldValue(a.Data, o.Field)
		bv, _ := fieldValue(b.Data, o.Field)
		c := compareValues(av, bv)
		if o.Direction == models.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return strings.Compare(a.ID, b.ID)
}

// afterCursor reports whether doc sorts strictly after the cursor position.
func afterCursor(doc models.Document, cur models.Cursor, orders []models.Order) bool {
	for i, o := range orders {
		if i >= len(cur.Values) {
			break
		}
		v, _ := fieldValue(doc.Data, o.Field)
		c := compareValues(v, cur.Values[i])
		if o.Direction == models.Desc {
			c = -c
		}
		if c != 0 {
			return c > 0
		}
	}
	return doc.ID > cur.DocID
}

// runQuery applies filters, ordering, cursor and limit of q to docs.
func runQuery(docs []models.Document, q models.Query) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if matches(d, q) {
			out = append(out, d)
		}
	}

	slices.SortStableFunc(out, func(a, b models.Document) int {
		return compareDocs(a, b, q.Orders)
	})

	if q.After != nil {
		idx := slices.IndexFunc(out, func(d models.Document) bool {
			return afterCursor(d, *q.After, q.Orders)
		})
		if idx < 0 {
			idx = len(out)
		}
		out = out[idx:]
	}

	if q.Max > 0 && len(out) > q.Max {
		out = out[:q.Max]
	}
	return out
}
