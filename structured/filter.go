package structured

import (
	"context"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/eluv-io/errors-go"
)

// Query queries the given target data structure with a JSONPath expression or
// a slash-separated path query.
func Query(target interface{}, query string) (interface{}, error) {
	filter, err := NewFilter(query)
	if err != nil {
		return nil, err
	}
	return filter.Apply(target)
}

// Filter is a compiled query that can be applied to structured data. Queries
// are expressed in JSONPath ("$.store.books[0].price") or as slash-separated
// paths ("/store/books/0/price"), which are converted to JSONPath notation.
type Filter struct {
	separator string
	query     string
	eval      gval.Evaluable
}

func NewFilter(query string) (filter *Filter, err error) {
	filter = &Filter{
		separator: ".",
		query:     query,
	}
	if query != "" && query[0] == '/' {
		filter.separator = "/"
		filter.query = slashToDot(query)
	}
	lang := gval.NewLanguage(gval.Arithmetic(), jsonpath.Language())
	filter.eval, err = lang.NewEvaluable(filter.query)
	if err != nil {
		return nil, errors.E("filter", errors.K.Invalid, err, "query", query)
	}
	return filter, nil
}

// Query returns the filter's query in 'native' form.
func (f *Filter) Query() string {
	return f.query
}

// Transform implements Transformer by applying the filter.
func (f *Filter) Transform(data interface{}) (interface{}, error) {
	return f.Apply(data)
}

// Apply evaluates the filter on the given structure.
func (f *Filter) Apply(structure interface{}) (interface{}, error) {
	filtered, err := f.eval(context.Background(), dereference(structure))
	if err != nil {
		return nil, errors.E("filter structure", err, "query", f.query)
	}
	return filtered, nil
}

// ApplyAndFlatten evaluates the filter and returns the result as flattened
// [path, value, type] triplets.
func (f *Filter) ApplyAndFlatten(structure interface{}) ([][3]string, error) {
	filtered, err := f.Apply(structure)
	if err != nil {
		return nil, err
	}
	return Flatten(filtered, f.separator)
}

// slashToDot converts a slash separated query string to the '$.' notation:
// /store/books/3/price --> $.store.books[3].price
func slashToDot(s string) string {
	if s == "/" {
		return "$"
	}

	p := ParsePath(s, "/")
	sb := strings.Builder{}
	sb.WriteString("$")
	for _, seg := range p {
		if len(seg) == 0 {
			// empty segment: recursive search
			// /path//something --> $.path..something
			sb.WriteString(`.`)
			continue
		}
		if strings.Contains("0123456789-*(?", seg[0:1]) {
			sb.WriteString(`[`)
			sb.WriteString(seg)
			sb.WriteString(`]`)
			continue
		}
		sb.WriteString(`.`)
		for {
			idx := strings.Index(seg, "[")
			if idx == -1 {
				sb.WriteString(seg)
				break
			}
			sb.WriteString(seg[:idx])
			seg = seg[idx:]
			idx = strings.Index(seg, "]")
			if idx == -1 {
				sb.WriteString(seg)
				sb.WriteString(`]`)
				break
			}
			sb.WriteString(seg[:idx+1])
			if idx+1 >= len(seg) {
				break
			}
			seg = seg[idx+1:]
		}
	}
	return sb.String()
}

// CombinePathQuery prefixes the given query with the provided path.
func CombinePathQuery(path, query string) string {
	if strings.HasPrefix(query, "/") {
		if strings.HasSuffix(path, "/") {
			return path + query[1:]
		}
		return path + query
	}
	if strings.HasSuffix(path, "/") {
		return path + query
	}
	return path + "/" + query
}
