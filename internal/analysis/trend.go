package analysis

// Point is one (x, y) observation. Key optionally names the category the
// observation belongs to.
type Point struct {
	X   float64 `json:"x" yaml:"x"`
	Y   float64 `json:"y" yaml:"y"`
	Key string  `json:"key,omitempty" yaml:"key,omitempty"`
}

// Fit is a fitted line y = Intercept + Slope*x.
type Fit struct {
	Predictor string  `json:"predictor" yaml:"predictor"`
	Response  string  `json:"response" yaml:"response"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	Slope     float64 `json:"slope" yaml:"slope"`
	RSquared  float64 `json:"r_squared" yaml:"r_squared"`
	N         int     `json:"n" yaml:"n"`
}

// Predict evaluates the fitted line at x.
func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// Points collects the (predictor, response) pairs for every row where both
// numeric fields are defined, in row order.
func Points(frame Frame, predictor, response string) ([]Point, error) {
	return collectPoints(frame, "", predictor, response)
}

// KeyedPoints is Points with each observation labelled by the categorical
// keyField of its row.
func KeyedPoints(frame Frame, keyField, predictor, response string) ([]Point, error) {
	if _, err := requireColumn(frame, keyField, KindText); err != nil {
		return nil, err
	}
	return collectPoints(frame, keyField, predictor, response)
}

func collectPoints(frame Frame, keyField, predictor, response string) ([]Point, error) {
	xCol, err := requireColumn(frame, predictor, KindNumber)
	if err != nil {
		return nil, err
	}
	yCol, err := requireColumn(frame, response, KindNumber)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, frame.Len())
	for i := 0; i < frame.Len(); i++ {
		x, okX := frame.Number(i, xCol.Name).Float64()
		y, okY := frame.Number(i, yCol.Name).Float64()
		if !okX || !okY {
			continue
		}
		p := Point{X: x, Y: y}
		if keyField != "" {
			p.Key = frame.Text(i, keyField)
		}
		points = append(points, p)
	}
	return points, nil
}

// FitLinearTrend fits response against predictor by ordinary least squares
// over the rows where both fields are defined.
func FitLinearTrend(frame Frame, predictor, response string) (Fit, error) {
	points, err := Points(frame, predictor, response)
	if err != nil {
		return Fit{}, err
	}
	return FitPoints(points, predictor, response)
}

// FitPoints applies the closed-form single-predictor normal equations:
// slope = Sxy/Sxx and intercept = mean(y) - slope*mean(x).
func FitPoints(points []Point, predictor, response string) (Fit, error) {
	n := len(points)
	if n < 2 {
		return Fit{}, &InsufficientDataError{Predictor: predictor, Response: response, Rows: n}
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy, syy float64
	for _, p := range points {
		dx := p.X - meanX
		dy := p.Y - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return Fit{}, &DegenerateInputError{Field: predictor}
	}

	slope := sxy / sxx
	fit := Fit{
		Predictor: predictor,
		Response:  response,
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		N:         n,
		RSquared:  1,
	}
	// A constant response is fit exactly by the horizontal line.
	if syy > 0 {
		fit.RSquared = (sxy * sxy) / (sxx * syy)
	}
	return fit, nil
}
