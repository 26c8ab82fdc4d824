package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	eanUseCase "github.com/allisson/codeval/internal/ean/usecase"
)

// eanValidationOutput is the JSON shape for the validate-ean command.
type eanValidationOutput struct {
	IsValid bool   `json:"is_valid"`
	Format  string `json:"format,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RunValidateEAN validates an EAN code and writes the result to the IOTuple writer.
func RunValidateEAN(
	ctx context.Context,
	useCase eanUseCase.EANUseCase,
	ioTuple IOTuple,
	code string,
	format string,
) error {
	result := useCase.Validate(ctx, code)

	output := eanValidationOutput{IsValid: result.IsValid}
	if result.IsValid {
		output.Format = result.Format.String()
	} else {
		output.Error = strings.Join(result.Errors, "; ")
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(ioTuple.Writer)
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	case "text":
		if output.IsValid {
			fmt.Fprintf(ioTuple.Writer, "valid (%s)\n", output.Format)
		} else {
			fmt.Fprintf(ioTuple.Writer, "invalid: %s\n", output.Error)
		}
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	return nil
}
