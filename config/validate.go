package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/pathviz/graph"
	"github.com/katalvlaran/pathviz/gridgraph"
)

// validate is the shared validator with the scenario rules registered.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("gridrow", validateGridRow)
	_ = validate.RegisterValidation("algorithm", validateAlgorithm)
	_ = validate.RegisterValidation("representation", validateRepresentation)
	_ = validate.RegisterValidation("duration", validateDuration)
}

// validateGridRow accepts rows made only of grid cell characters.
func validateGridRow(fl validator.FieldLevel) bool {
	row := strings.TrimSpace(fl.Field().String())
	for _, r := range row {
		switch r {
		case gridgraph.CellOpen, gridgraph.CellBlocked, gridgraph.CellStart, gridgraph.CellEnd:
		default:
			return false
		}
	}

	return row != ""
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	_, err := ParseAlgorithm(fl.Field().String())
	return err == nil
}

func validateRepresentation(fl validator.FieldLevel) bool {
	_, err := graph.ParseRepresentation(fl.Field().String())
	return err == nil
}

// validateDuration accepts non-negative time.ParseDuration strings.
func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d >= 0
}
