package main

import (
	"errors"

	"swstats/internal/analysis"
)

func errorHint(err error) string {
	var unknown *analysis.UnknownFieldError
	if errors.As(err, &unknown) {
		return "column names are snake_case, e.g. ship_total or hyperdrive_ratio"
	}
	switch analysis.ErrorKind(err) {
	case analysis.KindValidation:
		return "the source data is malformed; check the snapshot files or the API response"
	case analysis.KindInsufficientData:
		return "pick fields that are defined for at least two rows with varying predictor values"
	default:
		return ""
	}
}
