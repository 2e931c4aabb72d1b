package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Group sort modes accepted by AggregateOptions.Sort.
const (
	SortNone      = ""
	SortCountDesc = "count_desc"
	SortMeanDesc  = "mean_desc"
	SortMeanAsc   = "mean_asc"
	SortKeyAsc    = "key_asc"
)

// SortModes lists the accepted group sort modes.
var SortModes = []string{SortCountDesc, SortMeanDesc, SortMeanAsc, SortKeyAsc}

// AggregateOptions tunes AggregateBy.
type AggregateOptions struct {
	// MinCount drops groups with fewer rows. Zero and one keep every group;
	// two keeps only categories with more than one member.
	MinCount int
	// Sort is one of the Sort* modes; the default keeps first-seen order.
	Sort string
}

// Group is the aggregate of all rows sharing one key.
type Group struct {
	Key string `json:"key" yaml:"key"`
	// Count is the number of rows with this key, defined value or not.
	Count int `json:"count" yaml:"count"`
	// Defined is the number of rows whose value field was defined.
	Defined int `json:"defined" yaml:"defined"`
	// Mean is the arithmetic mean over the defined values.
	Mean Value `json:"mean" yaml:"mean"`
}

// Groups is an ordered aggregation result.
type Groups []Group

// Lookup returns the group with the given key.
func (g Groups) Lookup(key string) (Group, bool) {
	for _, group := range g {
		if group.Key == key {
			return group, true
		}
	}
	return Group{}, false
}

// Keys returns the group keys in order.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for _, group := range g {
		keys = append(keys, group.Key)
	}
	return keys
}

// AggregateBy groups the frame's rows by keyField and reports, per key, the
// row count and the mean of valueField over the rows where it is defined.
// Groups appear in first-seen order unless opts.Sort says otherwise.
func AggregateBy(frame Frame, keyField, valueField string, opts AggregateOptions) (Groups, error) {
	keyCol, err := requireColumn(frame, keyField)
	if err != nil {
		return nil, err
	}
	valueCol, err := requireColumn(frame, valueField, KindNumber)
	if err != nil {
		return nil, err
	}
	if !validSort(opts.Sort) {
		return nil, fmt.Errorf("unsupported group sort %q (want one of %s)", opts.Sort, strings.Join(SortModes, ", "))
	}

	grouped := make(map[string][]int)
	order := make([]string, 0)
	for i := 0; i < frame.Len(); i++ {
		key := CellString(frame, i, keyCol)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	result := make(Groups, 0, len(order))
	for _, key := range order {
		rows := grouped[key]
		if len(rows) < opts.MinCount {
			continue
		}
		result = append(result, aggregateRows(frame, key, rows, valueCol.Name))
	}

	sortGroups(result, opts.Sort)
	return result, nil
}

func aggregateRows(frame Frame, key string, rows []int, valueField string) Group {
	group := Group{Key: key, Count: len(rows)}
	var total float64
	for _, row := range rows {
		v, ok := frame.Number(row, valueField).Float64()
		if !ok {
			continue
		}
		total += v
		group.Defined++
	}
	if group.Defined > 0 {
		group.Mean = Defined(total / float64(group.Defined))
	}
	return group
}

func validSort(mode string) bool {
	if mode == SortNone {
		return true
	}
	for _, candidate := range SortModes {
		if mode == candidate {
			return true
		}
	}
	return false
}

func sortGroups(g Groups, mode string) {
	byMean := func(desc bool) func(i, j int) bool {
		return func(i, j int) bool {
			a, okA := g[i].Mean.Float64()
			b, okB := g[j].Mean.Float64()
			if !okA || !okB {
				return okA && !okB
			}
			if desc {
				return a > b
			}
			return a < b
		}
	}

	switch mode {
	case SortCountDesc:
		sort.SliceStable(g, func(i, j int) bool { return g[i].Count > g[j].Count })
	case SortMeanDesc:
		sort.SliceStable(g, byMean(true))
	case SortMeanAsc:
		sort.SliceStable(g, byMean(false))
	case SortKeyAsc:
		sort.SliceStable(g, func(i, j int) bool { return strings.ToLower(g[i].Key) < strings.ToLower(g[j].Key) })
	default:
		// first-seen order
	}
}
