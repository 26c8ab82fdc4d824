package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	eicUseCase "github.com/allisson/codeval/internal/eic/usecase"
)

// eicValidationOutput is the JSON shape for the validate-eic command.
type eicValidationOutput struct {
	IsValid bool     `json:"is_valid"`
	EICCode string   `json:"eic_code"`
	Errors  []string `json:"errors,omitempty"`
}

// RunValidateEIC validates an EIC code and writes the result to the IOTuple writer.
func RunValidateEIC(
	ctx context.Context,
	useCase eicUseCase.EICUseCase,
	ioTuple IOTuple,
	code string,
	format string,
) error {
	result := useCase.Validate(ctx, code)

	output := eicValidationOutput{
		IsValid: result.IsValid,
		EICCode: result.Code,
		Errors:  result.Errors,
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(ioTuple.Writer)
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	case "text":
		if output.IsValid {
			fmt.Fprintf(ioTuple.Writer, "valid (%s)\n", output.EICCode)
		} else {
			fmt.Fprintf(ioTuple.Writer, "invalid: %s\n", strings.Join(output.Errors, "; "))
		}
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	return nil
}
