package analysis_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"swstats/internal/analysis"
)

type stubFrame struct {
	text    map[string][]string
	numbers map[string][]analysis.Value
	order   []analysis.Column
	rows    int
}

func newStubFrame(rows int) *stubFrame {
	return &stubFrame{
		text:    map[string][]string{},
		numbers: map[string][]analysis.Value{},
		rows:    rows,
	}
}

func (f *stubFrame) withText(name string, values ...string) *stubFrame {
	f.text[name] = values
	f.order = append(f.order, analysis.Column{Name: name, Kind: analysis.KindText})
	return f
}

func (f *stubFrame) withNumbers(name string, values ...analysis.Value) *stubFrame {
	f.numbers[name] = values
	f.order = append(f.order, analysis.Column{Name: name, Kind: analysis.KindNumber})
	return f
}

func (f *stubFrame) Len() int { return f.rows }

func (f *stubFrame) Columns() []analysis.Column { return f.order }

func (f *stubFrame) Text(row int, name string) string { return f.text[name][row] }

func (f *stubFrame) Number(row int, name string) analysis.Value { return f.numbers[name][row] }

func nums(values ...float64) []analysis.Value {
	out := make([]analysis.Value, 0, len(values))
	for _, v := range values {
		out = append(out, analysis.Defined(v))
	}
	return out
}

func TestAggregateByCountsAndMeans(t *testing.T) {
	frame := newStubFrame(5).
		withText("species", "Droid", "Human", "Droid", "Wookiee", "Droid").
		withNumbers("mass", nums(75, 77, 32, 112, 140)...)

	groups, err := analysis.AggregateBy(frame, "species", "mass", analysis.AggregateOptions{})
	if err != nil {
		t.Fatalf("AggregateBy returned error: %v", err)
	}
	droid, ok := groups.Lookup("Droid")
	if !ok {
		t.Fatalf("expected Droid group, got %v", groups.Keys())
	}
	if droid.Count != 3 {
		t.Fatalf("expected count 3, got %d", droid.Count)
	}
	mean, defined := droid.Mean.Float64()
	if !defined {
		t.Fatal("expected defined mean")
	}
	if want := (75.0 + 32.0 + 140.0) / 3.0; math.Abs(mean-want) > 1e-9 {
		t.Fatalf("unexpected mean: got %v want %v", mean, want)
	}
	if diff := cmp.Diff([]string{"Droid", "Human", "Wookiee"}, groups.Keys()); diff != "" {
		t.Fatalf("groups should keep first-seen order (-want +got):\n%s", diff)
	}
}

func TestAggregateByIgnoresUndefinedValues(t *testing.T) {
	frame := newStubFrame(4).
		withText("species", "Droid", "Droid", "Droid", "Hutt").
		withNumbers("mass", analysis.Defined(10), analysis.Undefined, analysis.Defined(20), analysis.Undefined)

	groups, err := analysis.AggregateBy(frame, "species", "mass", analysis.AggregateOptions{})
	if err != nil {
		t.Fatalf("AggregateBy returned error: %v", err)
	}
	droid, _ := groups.Lookup("Droid")
	if droid.Count != 3 || droid.Defined != 2 {
		t.Fatalf("unexpected droid counts: %+v", droid)
	}
	if got := droid.Mean.Or(-1); got != 15 {
		t.Fatalf("expected mean 15, got %v", got)
	}
	hutt, _ := groups.Lookup("Hutt")
	if hutt.Mean.IsDefined() {
		t.Fatalf("expected undefined mean for group without values, got %v", hutt.Mean)
	}
}

func TestAggregateByMinCountDropsSingletons(t *testing.T) {
	frame := newStubFrame(5).
		withText("species", "Droid", "Human", "Droid", "Wookiee", "Human").
		withNumbers("mass", nums(1, 2, 3, 4, 5)...)

	groups, err := analysis.AggregateBy(frame, "species", "mass", analysis.AggregateOptions{MinCount: 2})
	if err != nil {
		t.Fatalf("AggregateBy returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Droid", "Human"}, groups.Keys()); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
}

func TestAggregateBySortModes(t *testing.T) {
	frame := newStubFrame(6).
		withText("k", "b", "a", "c", "c", "a", "c").
		withNumbers("v", analysis.Defined(5), analysis.Defined(1), analysis.Undefined, analysis.Undefined, analysis.Defined(3), analysis.Undefined)

	tests := []struct {
		mode string
		want []string
	}{
		{analysis.SortNone, []string{"b", "a", "c"}},
		{analysis.SortCountDesc, []string{"c", "a", "b"}},
		{analysis.SortMeanDesc, []string{"b", "a", "c"}},
		{analysis.SortMeanAsc, []string{"a", "b", "c"}},
		{analysis.SortKeyAsc, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			groups, err := analysis.AggregateBy(frame, "k", "v", analysis.AggregateOptions{Sort: tt.mode})
			if err != nil {
				t.Fatalf("AggregateBy returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, groups.Keys()); diff != "" {
				t.Fatalf("unexpected order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateByNumericKey(t *testing.T) {
	frame := newStubFrame(3).
		withNumbers("episode", analysis.Defined(4), analysis.Undefined, analysis.Defined(4)).
		withNumbers("ships", nums(1, 2, 3)...)

	groups, err := analysis.AggregateBy(frame, "episode", "ships", analysis.AggregateOptions{})
	if err != nil {
		t.Fatalf("AggregateBy returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"4", "NA"}, groups.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestAggregateByRejectsBadColumns(t *testing.T) {
	frame := newStubFrame(1).withText("species", "Droid").withNumbers("mass", nums(1)...)

	var unknown *analysis.UnknownFieldError
	if _, err := analysis.AggregateBy(frame, "planet", "mass", analysis.AggregateOptions{}); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFieldError for missing key, got %v", err)
	}
	_, err := analysis.AggregateBy(frame, "species", "species", analysis.AggregateOptions{})
	if !errors.As(err, &unknown) || !unknown.Found {
		t.Fatalf("expected kind mismatch error for text value field, got %v", err)
	}
	if _, err := analysis.AggregateBy(frame, "species", "mass", analysis.AggregateOptions{Sort: "sideways"}); err == nil {
		t.Fatal("expected error for unsupported sort mode")
	}
}

func TestFitLinearTrendExactLine(t *testing.T) {
	frame := newStubFrame(4).
		withNumbers("x", nums(1, 2, 3, 4)...).
		withNumbers("y", nums(2, 4, 6, 8)...)

	fit, err := analysis.FitLinearTrend(frame, "x", "y")
	if err != nil {
		t.Fatalf("FitLinearTrend returned error: %v", err)
	}
	if math.Abs(fit.Slope-2) > 1e-9 {
		t.Fatalf("expected slope 2, got %v", fit.Slope)
	}
	if math.Abs(fit.Intercept) > 1e-9 {
		t.Fatalf("expected intercept 0, got %v", fit.Intercept)
	}
	if fit.N != 4 {
		t.Fatalf("expected 4 points, got %d", fit.N)
	}
	if math.Abs(fit.RSquared-1) > 1e-9 {
		t.Fatalf("expected perfect fit, got r2=%v", fit.RSquared)
	}
	if got := fit.Predict(10); math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected prediction 20, got %v", got)
	}
}

func TestFitLinearTrendSkipsUndefinedRows(t *testing.T) {
	frame := newStubFrame(5).
		withNumbers("x", analysis.Defined(1), analysis.Defined(2), analysis.Undefined, analysis.Defined(3), analysis.Defined(4)).
		withNumbers("y", analysis.Defined(3), analysis.Defined(5), analysis.Defined(100), analysis.Undefined, analysis.Defined(9))

	fit, err := analysis.FitLinearTrend(frame, "x", "y")
	if err != nil {
		t.Fatalf("FitLinearTrend returned error: %v", err)
	}
	if fit.N != 3 {
		t.Fatalf("expected 3 usable rows, got %d", fit.N)
	}
	if math.Abs(fit.Slope-2) > 1e-9 || math.Abs(fit.Intercept-1) > 1e-9 {
		t.Fatalf("unexpected fit: %+v", fit)
	}
}

func TestKeyedPointsLabelsObservations(t *testing.T) {
	frame := newStubFrame(3).
		withText("trilogy", "Originals", "Prequels", "Originals").
		withNumbers("x", analysis.Defined(1), analysis.Undefined, analysis.Defined(3)).
		withNumbers("y", nums(2, 4, 6)...)

	points, err := analysis.KeyedPoints(frame, "trilogy", "x", "y")
	if err != nil {
		t.Fatalf("KeyedPoints returned error: %v", err)
	}
	want := []analysis.Point{{X: 1, Y: 2, Key: "Originals"}, {X: 3, Y: 6, Key: "Originals"}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}

	var unknown *analysis.UnknownFieldError
	if _, err := analysis.KeyedPoints(frame, "x", "x", "y"); !errors.As(err, &unknown) || !unknown.Found {
		t.Fatalf("expected kind mismatch for numeric key, got %v", err)
	}
	if _, err := analysis.KeyedPoints(frame, "era", "x", "y"); !errors.As(err, &unknown) || unknown.Found {
		t.Fatalf("expected unknown key column, got %v", err)
	}
}

func TestFitLinearTrendInsufficientData(t *testing.T) {
	frame := newStubFrame(2).
		withNumbers("x", analysis.Defined(1), analysis.Undefined).
		withNumbers("y", analysis.Defined(1), analysis.Defined(2))

	_, err := analysis.FitLinearTrend(frame, "x", "y")
	var insufficient *analysis.InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.Rows != 1 {
		t.Fatalf("expected 1 usable row, got %d", insufficient.Rows)
	}
	if kind := analysis.ErrorKind(err); kind != analysis.KindInsufficientData {
		t.Fatalf("unexpected error kind %q", kind)
	}
}

func TestFitLinearTrendDegeneratePredictor(t *testing.T) {
	frame := newStubFrame(3).
		withNumbers("x", nums(5, 5, 5)...).
		withNumbers("y", nums(1, 2, 3)...)

	_, err := analysis.FitLinearTrend(frame, "x", "y")
	var degenerate *analysis.DegenerateInputError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected DegenerateInputError, got %v", err)
	}
	if degenerate.Field != "x" {
		t.Fatalf("unexpected field %q", degenerate.Field)
	}
}

func TestSortOrderPutsUndefinedLast(t *testing.T) {
	frame := newStubFrame(4).
		withNumbers("v", analysis.Undefined, analysis.Defined(3), analysis.Defined(1), analysis.Defined(2))

	asc, err := analysis.SortOrder(frame, "v", false)
	if err != nil {
		t.Fatalf("SortOrder returned error: %v", err)
	}
	if diff := cmp.Diff([]int{2, 3, 1, 0}, asc); diff != "" {
		t.Fatalf("unexpected ascending order (-want +got):\n%s", diff)
	}
	desc, err := analysis.SortOrder(frame, "v", true)
	if err != nil {
		t.Fatalf("SortOrder returned error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 3, 2, 0}, desc); diff != "" {
		t.Fatalf("unexpected descending order (-want +got):\n%s", diff)
	}
}

func TestValueEncoding(t *testing.T) {
	if got := analysis.Defined(math.NaN()); got.IsDefined() {
		t.Fatal("NaN must not produce a defined value")
	}
	data, err := analysis.Undefined.MarshalJSON()
	if err != nil || string(data) != "null" {
		t.Fatalf("expected null, got %s (%v)", data, err)
	}
	data, err = analysis.Defined(62.5).MarshalJSON()
	if err != nil || string(data) != "62.5" {
		t.Fatalf("expected 62.5, got %s (%v)", data, err)
	}
	if s := analysis.Undefined.String(); s != "NA" {
		t.Fatalf("expected NA, got %q", s)
	}
	if r := analysis.Defined(66.6666).Round(2); r.String() != "66.67" {
		t.Fatalf("unexpected rounding: %v", r)
	}
}
